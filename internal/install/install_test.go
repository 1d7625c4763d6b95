package install

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/qdm12/cfddns/internal/install/mock_install"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseComponent(t *testing.T) {
	t.Parallel()

	component, err := ParseComponent("Schedule")
	require.NoError(t, err)
	assert.Equal(t, Schedule, component)

	_, err = ParseComponent("daemon")
	assert.ErrorIs(t, err, ErrComponentUnknown)
	assert.EqualError(t, err, `component is unknown: "daemon" must be one of service, schedule or cron`)
}

type fileRecorder struct {
	written map[string]string
	removed []string
}

func newTestInstaller(goos string, commander Commander) (*Installer, *fileRecorder) {
	recorder := &fileRecorder{written: map[string]string{}}
	installer := &Installer{
		executable: "/opt/cfddns/cfddns",
		goos:       goos,
		unitDir:    "/etc/systemd/system",
		commander:  commander,
		writeFile: func(name string, data []byte, _ fs.FileMode) error {
			recorder.written[name] = string(data)
			return nil
		},
		removeFile: func(name string) error {
			recorder.removed = append(recorder.removed, name)
			if name == "/etc/systemd/system/cloudflareddns.timer" {
				return fs.ErrNotExist
			}
			return nil
		},
	}
	return installer, recorder
}

func Test_Installer_Install_systemdService(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	commander := mock_install.NewMockCommander(ctrl)
	commander.EXPECT().Output(ctx, "", "systemctl", "daemon-reload").Return("", nil)
	installer, files := newTestInstaller("linux", commander)

	message, err := installer.Install(ctx, Service)

	require.NoError(t, err)
	assert.Equal(t, "enable and start it with: systemctl enable --now cloudflareddns.service", message)
	const expectedUnit = `[Unit]
Description=Cloudflare DDNS service
Wants=network-online.target
After=network-online.target

[Service]
Type=simple
ExecStart=/opt/cfddns/cfddns run --loops
Restart=on-failure
KillSignal=SIGINT
TimeoutStopSec=20

[Install]
WantedBy=multi-user.target
`
	assert.Equal(t, map[string]string{
		"/etc/systemd/system/cloudflareddns.service": expectedUnit,
	}, files.written)
}

func Test_Installer_Install_systemdTimer(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	commander := mock_install.NewMockCommander(ctrl)
	commander.EXPECT().Output(ctx, "", "systemctl", "daemon-reload").Return("", nil)
	installer, files := newTestInstaller("linux", commander)

	_, err := installer.Install(ctx, Schedule)

	require.NoError(t, err)
	require.Len(t, files.written, 2)
	assert.Contains(t, files.written["/etc/systemd/system/cloudflareddns.service"],
		"Type=oneshot\nExecStart=/opt/cfddns/cfddns run\n")
	assert.Contains(t, files.written["/etc/systemd/system/cloudflareddns.timer"],
		"OnBootSec=2min\nOnUnitActiveSec=2min\n")
}

func Test_Installer_Install_cron(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		existing    string
		existingErr error
		expectedTab string
		expectedMsg string
		skipInstall bool
	}{
		"no_crontab": {
			existingErr: errors.New("no crontab for user"),
			expectedTab: "*/2 * * * * /opt/cfddns/cfddns run\n",
		},
		"existing_crontab": {
			existing:    "0 3 * * * /usr/bin/backup",
			expectedTab: "0 3 * * * /usr/bin/backup\n*/2 * * * * /opt/cfddns/cfddns run\n",
		},
		"already_installed": {
			existing:    "*/2 * * * * /opt/cfddns/cfddns run\n",
			expectedMsg: "cron job already installed",
			skipInstall: true,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			ctx := context.Background()

			commander := mock_install.NewMockCommander(ctrl)
			commander.EXPECT().Output(ctx, "", "crontab", "-l").
				Return(testCase.existing, testCase.existingErr)
			if !testCase.skipInstall {
				commander.EXPECT().Output(ctx, testCase.expectedTab, "crontab", "-").
					Return("", nil)
			}
			installer, _ := newTestInstaller("linux", commander)

			message, err := installer.Install(ctx, Cron)

			require.NoError(t, err)
			assert.Equal(t, testCase.expectedMsg, message)
		})
	}
}

func Test_Installer_Install_windowsService(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	errTest := errors.New("exit status 5")
	commander := mock_install.NewMockCommander(ctrl)
	commander.EXPECT().Output(ctx, "", "sc", "create", "CloudflareDDNS",
		"start=", "delayed-auto", "binPath=", `"/opt/cfddns/cfddns" run --loops`).
		Return("Access is denied.\r\n", errTest)
	installer, _ := newTestInstaller("windows", commander)

	_, err := installer.Install(ctx, Service)

	assert.ErrorIs(t, err, ErrCommandFailed)
	assert.ErrorIs(t, err, errTest)
	assert.EqualError(t, err, "command failed: sc create CloudflareDDNS start= delayed-auto "+
		`binPath= "/opt/cfddns/cfddns" run --loops: exit status 5: Access is denied.`)
}

func Test_Installer_Install_windowsCron(t *testing.T) {
	t.Parallel()

	installer, _ := newTestInstaller("windows", nil)

	_, err := installer.Install(context.Background(), Cron)

	assert.ErrorIs(t, err, ErrNotSupported)
}

func Test_Installer_Uninstall_systemdTimer(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	commander := mock_install.NewMockCommander(ctrl)
	commander.EXPECT().Output(ctx, "", "systemctl", "disable", "--now", "cloudflareddns.service").
		Return("", nil)
	commander.EXPECT().Output(ctx, "", "systemctl", "disable", "--now", "cloudflareddns.timer").
		Return("not loaded", errors.New("exit status 1"))
	commander.EXPECT().Output(ctx, "", "systemctl", "daemon-reload").Return("", nil)
	installer, files := newTestInstaller("linux", commander)

	err := installer.Uninstall(ctx, Schedule)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"/etc/systemd/system/cloudflareddns.service",
		"/etc/systemd/system/cloudflareddns.timer",
	}, files.removed)
}

func Test_Installer_Uninstall_cron(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	commander := mock_install.NewMockCommander(ctrl)
	commander.EXPECT().Output(ctx, "", "crontab", "-l").
		Return("0 3 * * * /usr/bin/backup\n*/2 * * * * /opt/cfddns/cfddns run\n", nil)
	commander.EXPECT().Output(ctx, "0 3 * * * /usr/bin/backup\n", "crontab", "-").
		Return("", nil)
	installer, _ := newTestInstaller("linux", commander)

	err := installer.Uninstall(ctx, Cron)

	assert.NoError(t, err)
}
