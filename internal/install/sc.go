package install

import (
	"context"
	"strconv"
)

func (i *Installer) installWindowsService(ctx context.Context) (message string, err error) {
	binPath := `"` + i.executable + `" run --loops`
	err = i.run(ctx, "", "sc", "create", windowsName,
		"start=", "delayed-auto", "binPath=", binPath)
	if err != nil {
		return "", err
	}
	return "start it with: sc start " + windowsName, nil
}

func (i *Installer) installWindowsTask(ctx context.Context) (message string, err error) {
	taskCommand := `"` + i.executable + `" run`
	err = i.run(ctx, "", "schtasks", "/create", "/tn", windowsName,
		"/sc", "MINUTE", "/mo", strconv.Itoa(scheduleMinutes),
		"/tr", taskCommand, "/ru", "System")
	if err != nil {
		return "", err
	}
	return "", nil
}
