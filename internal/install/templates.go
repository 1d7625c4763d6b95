package install

import (
	"strings"
	"text/template"
)

//nolint:gochecknoglobals
var (
	serviceUnitTemplate = template.Must(template.New("service").Parse(`[Unit]
Description=Cloudflare DDNS service
Wants=network-online.target
After=network-online.target

[Service]
Type=simple
ExecStart={{.Executable}} run --loops
Restart=on-failure
KillSignal=SIGINT
TimeoutStopSec=20

[Install]
WantedBy=multi-user.target
`))
	onceUnitTemplate = template.Must(template.New("once").Parse(`[Unit]
Description=Cloudflare DDNS single update
Wants=network-online.target
After=network-online.target

[Service]
Type=oneshot
ExecStart={{.Executable}} run
`))
	timerUnitTemplate = template.Must(template.New("timer").Parse(`[Unit]
Description=Runs the Cloudflare DDNS single update every {{.Minutes}} minutes

[Timer]
OnBootSec={{.Minutes}}min
OnUnitActiveSec={{.Minutes}}min

[Install]
WantedBy=timers.target
`))
	cronLineTemplate = template.Must(template.New("cron").Parse(
		`*/{{.Minutes}} * * * * {{.Executable}} run` + "\n"))
)

// scheduleMinutes is the period in minutes of scheduled tasks.
const scheduleMinutes = 2

type templateData struct {
	Executable string
	Minutes    uint
}

func (i *Installer) render(t *template.Template) string {
	data := templateData{
		Executable: quoteIfNeeded(i.executable),
		Minutes:    scheduleMinutes,
	}
	var sb strings.Builder
	err := t.Execute(&sb, data)
	if err != nil {
		panic(err) // templates and data are static
	}
	return sb.String()
}

func quoteIfNeeded(path string) string {
	if !strings.ContainsAny(path, " \t") {
		return path
	}
	return `"` + path + `"`
}
