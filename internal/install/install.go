// Package install installs and uninstalls the program as a system
// service, as a periodic scheduled task or as a cron job.
package install

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strings"
)

type Component string

const (
	Service  Component = "service"
	Schedule Component = "schedule"
	Cron     Component = "cron"
)

var ErrComponentUnknown = errors.New("component is unknown")

func ParseComponent(s string) (component Component, err error) {
	switch Component(strings.ToLower(s)) {
	case Service:
		return Service, nil
	case Schedule:
		return Schedule, nil
	case Cron:
		return Cron, nil
	default:
		return "", fmt.Errorf("%w: %q must be one of service, schedule or cron",
			ErrComponentUnknown, s)
	}
}

const (
	name           = "cloudflareddns"
	windowsName    = "CloudflareDDNS"
	systemdUnitDir = "/etc/systemd/system"
)

type Installer struct {
	executable string
	goos       string
	unitDir    string
	commander  Commander
	writeFile  func(name string, data []byte, perm fs.FileMode) error
	removeFile func(name string) error
}

// New creates an installer for the program executable path given.
func New(executable string) *Installer {
	return &Installer{
		executable: executable,
		goos:       runtime.GOOS,
		unitDir:    systemdUnitDir,
		commander:  &execCommander{},
		writeFile:  os.WriteFile,
		removeFile: os.Remove,
	}
}

var ErrNotSupported = errors.New("not supported on this operating system")

// Install installs the component given, and returns a message
// for the user describing what to do next, if anything.
func (i *Installer) Install(ctx context.Context, component Component) (
	message string, err error) {
	switch {
	case i.goos == "windows" && component == Service:
		return i.installWindowsService(ctx)
	case i.goos == "windows" && component == Schedule:
		return i.installWindowsTask(ctx)
	case i.goos == "windows":
		return "", fmt.Errorf("%s: %w", component, ErrNotSupported)
	case component == Service:
		return i.installSystemdService(ctx)
	case component == Schedule:
		return i.installSystemdTimer(ctx)
	default:
		return i.installCron(ctx)
	}
}

// Uninstall uninstalls the component given.
func (i *Installer) Uninstall(ctx context.Context, component Component) (err error) {
	switch {
	case i.goos == "windows" && component == Service:
		return i.run(ctx, "", "sc", "delete", windowsName)
	case i.goos == "windows" && component == Schedule:
		return i.run(ctx, "", "schtasks", "/delete", "/tn", windowsName, "/f")
	case i.goos == "windows":
		return fmt.Errorf("%s: %w", component, ErrNotSupported)
	case component == Service:
		return i.uninstallSystemd(ctx, name+".service")
	case component == Schedule:
		return i.uninstallSystemd(ctx, name+".service", name+".timer")
	default:
		return i.uninstallCron(ctx)
	}
}

var ErrCommandFailed = errors.New("command failed")

func (i *Installer) run(ctx context.Context, stdin, command string,
	args ...string) (err error) {
	_, err = i.output(ctx, stdin, command, args...)
	return err
}

func (i *Installer) output(ctx context.Context, stdin, command string,
	args ...string) (output string, err error) {
	output, err = i.commander.Output(ctx, stdin, command, args...)
	if err != nil {
		output = strings.TrimSpace(output)
		if output != "" {
			return output, fmt.Errorf("%w: %s %s: %w: %s", ErrCommandFailed,
				command, strings.Join(args, " "), err, output)
		}
		return output, fmt.Errorf("%w: %s %s: %w", ErrCommandFailed,
			command, strings.Join(args, " "), err)
	}
	return output, nil
}
