package install

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
)

func (i *Installer) installSystemdService(ctx context.Context) (message string, err error) {
	err = i.writeUnit(name+".service", i.render(serviceUnitTemplate))
	if err != nil {
		return "", err
	}

	err = i.run(ctx, "", "systemctl", "daemon-reload")
	if err != nil {
		return "", err
	}

	return "enable and start it with: systemctl enable --now " + name + ".service", nil
}

func (i *Installer) installSystemdTimer(ctx context.Context) (message string, err error) {
	err = i.writeUnit(name+".service", i.render(onceUnitTemplate))
	if err != nil {
		return "", err
	}

	err = i.writeUnit(name+".timer", i.render(timerUnitTemplate))
	if err != nil {
		return "", err
	}

	err = i.run(ctx, "", "systemctl", "daemon-reload")
	if err != nil {
		return "", err
	}

	return "enable and start it with: systemctl enable --now " + name + ".timer", nil
}

func (i *Installer) writeUnit(filename, content string) (err error) {
	path := filepath.Join(i.unitDir, filename)
	const perm fs.FileMode = 0o644
	err = i.writeFile(path, []byte(content), perm)
	if err != nil {
		return fmt.Errorf("writing systemd unit: %w", err)
	}
	return nil
}

// uninstallSystemd disables and removes the unit files given.
// Units not found are ignored.
func (i *Installer) uninstallSystemd(ctx context.Context, filenames ...string) (err error) {
	for _, filename := range filenames {
		// disabling fails if the unit does not exist, which is fine.
		_ = i.run(ctx, "", "systemctl", "disable", "--now", filename)

		path := filepath.Join(i.unitDir, filename)
		err = i.removeFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("removing systemd unit: %w", err)
		}
	}

	return i.run(ctx, "", "systemctl", "daemon-reload")
}
