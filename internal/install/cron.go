package install

import (
	"context"
	"strings"
)

func (i *Installer) installCron(ctx context.Context) (message string, err error) {
	line := i.render(cronLineTemplate)

	// crontab -l fails if the user has no crontab yet.
	existing, _ := i.commander.Output(ctx, "", "crontab", "-l")
	for _, existingLine := range strings.Split(existing, "\n") {
		if existingLine+"\n" == line {
			return "cron job already installed", nil
		}
	}

	crontab := existing
	if crontab != "" && !strings.HasSuffix(crontab, "\n") {
		crontab += "\n"
	}
	crontab += line

	err = i.run(ctx, crontab, "crontab", "-")
	if err != nil {
		return "", err
	}
	return "", nil
}

func (i *Installer) uninstallCron(ctx context.Context) (err error) {
	existing, err := i.output(ctx, "", "crontab", "-l")
	if err != nil {
		return err
	}

	command := quoteIfNeeded(i.executable) + " run"
	lines := strings.Split(existing, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" || strings.HasSuffix(line, command) {
			continue
		}
		kept = append(kept, line)
	}

	crontab := strings.Join(kept, "\n")
	if crontab != "" {
		crontab += "\n"
	}
	return i.run(ctx, crontab, "crontab", "-")
}
