package config

import (
	"math"
	"testing"
	"time"

	"github.com/qdm12/cfddns/internal/params"
	"github.com/qdm12/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrTo[T any](value T) *T { return &value }

func Test_Settings_String(t *testing.T) {
	t.Parallel()

	defaultSettings := Config{
		Paths:  Paths{DataDir: ptrTo("/data")},
		Health: Health{ServerAddress: ptrTo("")},
	}
	defaultSettings.SetDefaults()

	s := defaultSettings.String()

	const expected = `Settings summary:
├── HTTP client
|   ├── Timeout: 5s
|   └── Public IP retries: 3
├── Update
|   ├── Period: 1m0s
|   ├── Multi threaded: no
|   └── Concurrency: unlimited
├── Public IP fetching
|   ├── Fetcher: http
|   ├── IPv4 URL: https://ipv4.icanhazip.com/
|   └── IPv6 URL: https://ipv6.icanhazip.com/
├── Control server: disabled
├── Paths
|   └── Data directory: /data
├── Logger
|   ├── Level: INFO
|   └── Caller: hidden
├── Shoutrrr: disabled
├── Resolver: use Go default resolver
└── Health
    └── Server: disabled`
	assert.Equal(t, expected, s)
}

func Test_Config_FillFromDocument(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		config     Config
		document   params.Document
		expected   Config
		errMessage string
	}{
		"empty_document": {},
		"document_values": {
			document: params.Document{
				Delay:       ptrTo(uint64(30)),
				MutliThread: ptrTo(true),
				LogLevel:    ptrTo("debug"),
				IPv4URL:     ptrTo("https://ip4.example.com/"),
				IPv6URL:     ptrTo("https://ip6.example.com/"),
			},
			expected: Config{
				Update: Update{
					Period:      30 * time.Second,
					MultiThread: ptrTo(true),
				},
				PubIP: PubIP{
					URL4: "https://ip4.example.com/",
					URL6: "https://ip6.example.com/",
				},
				Logger: Logger{Level: ptrTo(log.LevelDebug)},
			},
		},
		"environment_takes_precedence": {
			config: Config{
				Update: Update{Period: time.Hour, MultiThread: ptrTo(false)},
				Logger: Logger{Level: ptrTo(log.LevelError)},
				PubIP:  PubIP{URL4: "https://env.example.com/"},
			},
			document: params.Document{
				Delay:       ptrTo(uint64(30)),
				MultiThread: ptrTo(true),
				LogLevel:    ptrTo("debug"),
				IPv4URL:     ptrTo("https://ip4.example.com/"),
			},
			expected: Config{
				Update: Update{Period: time.Hour, MultiThread: ptrTo(false)},
				Logger: Logger{Level: ptrTo(log.LevelError)},
				PubIP:  PubIP{URL4: "https://env.example.com/"},
			},
		},
		"zero_delay": {
			document:   params.Document{Delay: ptrTo(uint64(0))},
			errMessage: "delay: delay is not valid: must be at least 1 second",
		},
		"delay_overflowing_duration": {
			document: params.Document{Delay: ptrTo(uint64(math.MaxInt64))},
			errMessage: "delay: delay is not valid: 9223372036854775807 seconds " +
				"must be at most 9223372036 seconds",
		},
		"bad_log_level": {
			document:   params.Document{LogLevel: ptrTo("verbose")},
			errMessage: `log level: log level is unknown: "verbose" is not valid ` +
				`and can be one of debug, info, warning or error`,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			config := testCase.config
			err := config.FillFromDocument(testCase.document)

			if testCase.errMessage != "" {
				require.EqualError(t, err, testCase.errMessage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, config)
		})
	}
}

func Test_Config_Validate(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		modify     func(c *Config)
		errMessage string
	}{
		"defaults": {
			modify: func(*Config) {},
		},
		"period_too_short": {
			modify: func(c *Config) { c.Update.Period = time.Millisecond },
			errMessage: "update settings: period is too short: " +
				"1ms must be at least 1s",
		},
		"bad_fetcher": {
			modify:     func(c *Config) { c.PubIP.Fetcher = "ftp" },
			errMessage: "public ip settings: fetcher: ",
		},
		"bad_echo_url": {
			modify: func(c *Config) { c.PubIP.URL6 = "ipv6.example.com" },
			errMessage: "public ip settings: IPv6 echo URL: URL is not valid: scheme: ",
		},
		"all_fetchers": {
			modify: func(c *Config) { c.PubIP.Fetcher = "all" },
		},
		"all_fetchers_bad_echo_url": {
			modify: func(c *Config) {
				c.PubIP.Fetcher = "all"
				c.PubIP.URL4 = "ftp://ipv4.example.com"
			},
			errMessage: "public ip settings: IPv4 echo URL: URL is not valid: scheme: ",
		},
		"all_fetchers_bad_dns_timeout": {
			modify: func(c *Config) {
				c.PubIP.Fetcher = "all"
				c.PubIP.DNSTimeout = -time.Second
			},
			errMessage: "public ip settings: DNS timeout: DNS timeout must be positive: -1s",
		},
		"bad_dns_provider": {
			modify: func(c *Config) {
				c.PubIP.Fetcher = "dns"
				c.PubIP.DNSProvider = "google"
			},
			errMessage: "public ip settings: DNS provider: " +
				"unknown public IP echo DNS provider: google",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			config := Config{Paths: Paths{DataDir: ptrTo("/data")}}
			config.SetDefaults()
			testCase.modify(&config)

			err := config.Validate()

			if testCase.errMessage == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, testCase.errMessage)
		})
	}
}

func Test_parseSecondsOrDuration(t *testing.T) {
	t.Parallel()

	period, err := parseSecondsOrDuration("90")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, period)

	period, err = parseSecondsOrDuration("2m")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, period)

	_, err = parseSecondsOrDuration("soon")
	assert.Error(t, err)

	_, err = parseSecondsOrDuration("0")
	assert.ErrorIs(t, err, ErrDelayNotValid)

	_, err = parseSecondsOrDuration("18446744073709551615")
	assert.ErrorIs(t, err, ErrDelayNotValid)
}

func Test_PubIP_ToFetcherSettings(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		fetcher     string
		dnsEnabled  bool
		httpEnabled bool
		lines       []string
	}{
		"http": {
			fetcher:     "http",
			httpEnabled: true,
			lines:       []string{"IPv4 URL", "IPv6 URL"},
		},
		"dns": {
			fetcher:    "dns",
			dnsEnabled: true,
			lines:      []string{"DNS over TLS provider", "DNS timeout"},
		},
		"all": {
			fetcher:     "all",
			dnsEnabled:  true,
			httpEnabled: true,
			lines: []string{"IPv4 URL", "IPv6 URL",
				"DNS over TLS provider", "DNS timeout"},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			pubIP := PubIP{Fetcher: testCase.fetcher}
			pubIP.setDefaults()
			require.NoError(t, pubIP.Validate())

			dnsSettings, httpSettings := pubIP.ToFetcherSettings(nil, 1, nil)

			assert.Equal(t, testCase.dnsEnabled, dnsSettings.Enabled)
			assert.Equal(t, testCase.httpEnabled, httpSettings.Enabled)
			summary := pubIP.String()
			for _, line := range testCase.lines {
				assert.Contains(t, summary, line+": ")
			}
		})
	}
}
