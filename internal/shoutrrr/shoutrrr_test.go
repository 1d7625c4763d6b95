package shoutrrr

import (
	"errors"
	"sync"
	"testing"

	"github.com/containrrr/shoutrrr/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_addDefaultTitle(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		address        string
		defaultTitle   string
		updatedAddress string
	}{
		"generic_with_empty_title": {
			address:        "generic://example.com?title=",
			defaultTitle:   "Cloudflare DDNS",
			updatedAddress: "generic://example.com?title=",
		},
		"generic_with_title": {
			address:        "generic://example.com?title=MyTitle",
			defaultTitle:   "Cloudflare DDNS",
			updatedAddress: "generic://example.com?title=MyTitle",
		},
		"generic_without_title": {
			address:        "generic://example.com",
			defaultTitle:   "Cloudflare DDNS",
			updatedAddress: "generic://example.com?title=Cloudflare+DDNS",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			updatedAddress := addDefaultTitle(testCase.address, testCase.defaultTitle)

			assert.Equal(t, testCase.updatedAddress, updatedAddress)
		})
	}
}

type sendFunc func(message string, params *types.Params) []error

func (f sendFunc) Send(message string, params *types.Params) []error {
	return f(message, params)
}

type errorsRecorder struct {
	mutex  sync.Mutex
	errors []string
}

func (r *errorsRecorder) Error(s string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.errors = append(r.errors, s)
}

func Test_Client_Notify(t *testing.T) {
	t.Parallel()

	var messages []string
	logger := &errorsRecorder{}
	client := &Client{
		sender: sendFunc(func(message string, _ *types.Params) []error {
			messages = append(messages, message)
			return []error{nil, errors.New("unauthorized")}
		}),
		serviceNames: []string{"discord", "gotify"},
		logger:       logger,
	}

	const parallelism = 5
	var wg sync.WaitGroup
	for i := 0; i < parallelism; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			client.Notify("A record home.example.com set to 203.0.113.7")
		}()
	}
	wg.Wait()

	assert.Len(t, messages, parallelism)
	require.Len(t, logger.errors, parallelism)
	assert.Equal(t, "gotify: unauthorized", logger.errors[0])
}

func Test_New_noAddress(t *testing.T) {
	t.Parallel()

	client, err := New(Settings{})
	require.NoError(t, err)

	// no address so the sender must not be called
	client.sender = sendFunc(func(string, *types.Params) []error {
		t.Fatal("sender called")
		return nil
	})
	client.Notify("message")
}

func Test_Settings_setDefaults(t *testing.T) {
	t.Parallel()

	var settings Settings
	settings.setDefaults()

	assert.Equal(t, []string{}, settings.Addresses)
	assert.Equal(t, "Cloudflare DDNS", settings.DefaultTitle)
	assert.Equal(t, &noopLogger{}, settings.Logger)

	logger := &noopLogger{}
	settings = Settings{Logger: logger}
	settings.setDefaults()
	assert.Same(t, logger, settings.Logger)
}
