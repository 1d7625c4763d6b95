package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strconv"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/breml/rootcerts"
	"github.com/qdm12/cfddns/internal/change"
	"github.com/qdm12/cfddns/internal/config"
	"github.com/qdm12/cfddns/internal/control"
	"github.com/qdm12/cfddns/internal/health"
	"github.com/qdm12/cfddns/internal/healthchecksio"
	"github.com/qdm12/cfddns/internal/install"
	"github.com/qdm12/cfddns/internal/logging"
	"github.com/qdm12/cfddns/internal/models"
	"github.com/qdm12/cfddns/internal/network"
	"github.com/qdm12/cfddns/internal/noop"
	"github.com/qdm12/cfddns/internal/params"
	"github.com/qdm12/cfddns/internal/provider/cloudflare"
	"github.com/qdm12/cfddns/internal/resolver"
	"github.com/qdm12/cfddns/internal/server"
	"github.com/qdm12/cfddns/internal/shoutrrr"
	"github.com/qdm12/cfddns/internal/svc"
	"github.com/qdm12/cfddns/internal/update"
	"github.com/qdm12/cfddns/pkg/publicip"
	"github.com/qdm12/goservices"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosplash"
	"github.com/qdm12/log"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

const serviceName = "CloudflareDDNS"

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New()

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	errorCh := make(chan error)
	go func() {
		errorCh <- _main(ctx, os.Args, logger, buildInfo, time.Now)
	}()

	var err error
	select {
	case err = <-errorCh:
		stop()
	case <-ctx.Done():
		stop()
		logger.Warn("Caught OS signal, shutting down")
		// An update cycle in progress runs to completion,
		// bounded by the HTTP timeouts and retries.
		const shutdownGracePeriod = 30 * time.Second
		timer := time.NewTimer(shutdownGracePeriod)
		select {
		case err = <-errorCh:
			timer.Stop()
		case <-timer.C:
			logger.Warn("Shutdown timed out")
			os.Exit(1)
		}
	}

	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

var ErrCommandUnknown = errors.New("command is unknown")

func _main(ctx context.Context, args []string, logger *log.Logger,
	buildInfo models.BuildInformation, timeNow func() time.Time) (err error) {
	if len(args) < 2 { //nolint:gomnd
		printUsage(args[0])
		return fmt.Errorf("%w: no command given", ErrCommandUnknown)
	}

	if health.IsClientMode(args) {
		return healthcheck(ctx)
	}

	switch args[1] {
	case "version", "-version", "--version":
		fmt.Println(buildInfo.VersionString())
		return nil
	case "help", "-h", "--help":
		printUsage(args[0])
		return nil
	case "run":
		return run(ctx, args[2:], logger, buildInfo, timeNow)
	case "install", "uninstall":
		return installCommand(ctx, args[1], args[2:], logger)
	default:
		printUsage(args[0])
		return fmt.Errorf("%w: %s", ErrCommandUnknown, args[1])
	}
}

func printUsage(program string) {
	program = filepath.Base(program)
	fmt.Println("Usage:")
	fmt.Println("  " + program + " run [--loops] [--datadir DIR]")
	fmt.Println("  " + program + " install service|schedule|cron")
	fmt.Println("  " + program + " uninstall service|schedule|cron")
	fmt.Println("  " + program + " healthcheck")
	fmt.Println("  " + program + " version")
}

func run(ctx context.Context, args []string, logger *log.Logger,
	buildInfo models.BuildInformation, timeNow func() time.Time) (err error) {
	flagSet := flag.NewFlagSet("run", flag.ContinueOnError)
	loops := flagSet.Bool("loops", false, "run update cycles periodically until stopped")
	_ = flagSet.Bool("once", false, "run a single update cycle, which is the default")
	dataDirFlag := flagSet.String("datadir", "", "data directory, defaults to the data "+
		"directory next to the program executable")
	err = flagSet.Parse(args)
	if err != nil {
		return fmt.Errorf("parsing run flags: %w", err)
	}

	printSplash(buildInfo)

	config, records, err := readConfig(logger, *dataDirFlag)
	if err != nil {
		return err
	}

	if !*config.Update.MultiThread {
		runtime.GOMAXPROCS(1)
	}

	logFile, err := logging.NewFileWriter(config.Paths.LogFile())
	if err != nil {
		return fmt.Errorf("setting up log file: %w", err)
	}
	defer logFile.Close()
	logger.Patch(log.SetWriters(os.Stdout, logFile))

	shoutrrrClient, err := shoutrrr.New(shoutrrr.Settings{
		Addresses:    config.Shoutrrr.Addresses,
		DefaultTitle: config.Shoutrrr.DefaultTitle,
		Logger:       logger.New(log.SetComponent("shoutrrr")),
	})
	if err != nil {
		return fmt.Errorf("setting up Shoutrrr: %w", err)
	}

	dnsResolver := resolver.New(*config.Resolver.Address, config.Resolver.Timeout)
	client := network.NewClient(config.Client.Timeout, dnsResolver,
		logger.New(log.SetComponent("http client")))
	defer client.CloseIdleConnections()

	err = health.CheckHTTP(ctx, client, cloudflare.DefaultBaseURL)
	if err != nil {
		logger.Warn(err.Error())
	}

	idResolver := cloudflare.NewResolver(client, cloudflare.DefaultBaseURL)
	records, err = resolveRecords(ctx, idResolver, records, logger)
	if err != nil {
		shoutrrrClient.Notify(err.Error())
		return err
	}

	dnsSettings, httpSettings := config.PubIP.ToFetcherSettings(client,
		*config.Client.Retries, logger.New(log.SetComponent("public ip")))
	ipFetcher, err := publicip.NewFetcher(dnsSettings, httpSettings)
	if err != nil {
		return fmt.Errorf("creating public IP fetcher: %w", err)
	}

	updaterLogger := logger.New(log.SetComponent("updater"))
	cycle := update.NewCycle(ipFetcher, change.New(),
		cloudflare.New(client, cloudflare.DefaultBaseURL),
		shoutrrrClient, updaterLogger, *config.Update.Concurrency)
	hioClient := healthchecksio.New(client, config.Health.HealthchecksioBaseURL,
		*config.Health.HealthchecksioUUID)
	pingingCycle := healthchecksio.WrapCycle(cycle, hioClient,
		logger.New(log.SetComponent("healthchecks.io")))
	controller := update.NewController(pingingCycle, records, config.Update.Period,
		control.NewSignal(), updaterLogger, timeNow)

	if !*loops {
		controller.Once(ctx)
		return nil
	}

	controlServer, err := createServer(config.Server, controller, logger)
	if err != nil {
		return fmt.Errorf("creating control server: %w", err)
	}

	healthServer, err := createHealthServer(*config.Health.ServerAddress, controller, logger)
	if err != nil {
		return fmt.Errorf("creating health server: %w", err)
	}

	servicesSequence, err := goservices.NewSequence(goservices.SequenceSettings{
		ServicesStart: []goservices.Service{controller, controlServer, healthServer},
		ServicesStop:  []goservices.Service{healthServer, controlServer, controller},
	})
	if err != nil {
		return fmt.Errorf("creating services sequence: %w", err)
	}

	shoutrrrClient.Notify("Launched with " + strconv.Itoa(len(records)) + " records to watch")

	capability := svc.Compose(servicesSequence, controller)
	serviceLogger := logger.New(log.SetComponent("service"))
	err = svc.Run(ctx, serviceName, capability, serviceLogger)
	pingExit(hioClient, err, logger)
	if err != nil {
		shoutrrrClient.Notify(err.Error())
		return err
	}
	return nil
}

func pingExit(hioClient *healthchecksio.Client, runErr error, logger *log.Logger) {
	state := healthchecksio.Exit0
	if runErr != nil {
		state = healthchecksio.Exit1
	}
	const timeout = 3 * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	err := hioClient.Ping(ctx, state)
	if err != nil {
		logger.Warn("pinging healthchecks.io: " + err.Error())
	}
}

// healthcheck queries the health server of the program
// instance running, and is used as container healthcheck.
func healthcheck(ctx context.Context) (err error) {
	reader := reader.New(reader.Settings{})
	address, err := config.ReadHealthServerAddress(reader)
	if err != nil {
		return err
	}

	const timeout = 3 * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return health.NewClient().Query(ctx, address)
}

func printSplash(buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:       "qdm12",
		Repository: "cfddns",
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
		// Sponsor information
		PaypalUser:    "qmcgaw",
		GithubSponsor: "qdm12",
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Println(line)
	}
}

// readConfig reads the settings from the environment, which
// takes precedence over the config document in the data directory.
func readConfig(logger *log.Logger, dataDirFlag string) (
	config config.Config, records []models.Record, err error) {
	dataDir := resolveDataDir(dataDirFlag)

	// The .env file must be loaded before the reader
	// takes its snapshot of the environment.
	err = params.LoadDotEnv(dataDir)
	if err != nil {
		return config, nil, err
	}

	reader := reader.New(reader.Settings{
		HandleDeprecatedKey: func(source, oldKey, newKey string) {
			logger.Warnf("%q key %s is deprecated, please use %q instead",
				source, oldKey, newKey)
		},
	})

	err = config.Read(reader, logger)
	if err != nil {
		return config, nil, fmt.Errorf("reading settings: %w", err)
	}
	config.Paths.DataDir = &dataDir

	document, records, err := params.NewReader(logger).Read(dataDir)
	if err != nil {
		return config, nil, fmt.Errorf("reading config document: %w", err)
	}

	err = config.FillFromDocument(document)
	if err != nil {
		return config, nil, fmt.Errorf("config document: %w", err)
	}

	config.SetDefaults()
	err = config.Validate()
	if err != nil {
		return config, nil, fmt.Errorf("settings validation: %w", err)
	}

	logger.Patch(config.Logger.ToOptions()...)
	logger.Info(config.String())
	logRecordsCount(records, logger)

	return config, records, nil
}

// resolveDataDir returns the data directory from the flag value,
// or else from the DATADIR environment variable, or else the default.
func resolveDataDir(flagValue string) (dataDir string) {
	switch {
	case flagValue != "":
		return flagValue
	case os.Getenv("DATADIR") != "":
		return os.Getenv("DATADIR")
	default:
		return config.DefaultDataDir()
	}
}

func logRecordsCount(records []models.Record, logger *log.Logger) {
	ipv4, ipv6 := models.GroupByFamily(records)
	logger.Info(fmt.Sprintf("Found %d A and %d AAAA records to update",
		len(ipv4), len(ipv6)))
}

type recordResolver interface {
	Resolve(ctx context.Context, record models.Record) (models.Record, error)
}

// resolveRecords fills in the missing zone and record identifiers.
// Any failure is fatal since the record could never be updated.
func resolveRecords(ctx context.Context, resolver recordResolver,
	records []models.Record, logger *log.Logger) (
	resolved []models.Record, err error) {
	resolved = make([]models.Record, len(records))
	for i, record := range records {
		resolved[i], err = resolver.Resolve(ctx, record)
		if err != nil {
			return nil, fmt.Errorf("resolving identifiers of %s %s: %w",
				record.Type, record.Name, err)
		}
		if record.RecordID == "" {
			logger.Info("found " + resolved[i].String() + " with id " + resolved[i].RecordID)
		}
	}
	return resolved, nil
}

//nolint:ireturn
func createServer(settings config.Server, controller server.Controller,
	logger *log.Logger) (service goservices.Service, err error) {
	if !*settings.Enabled {
		return noop.New("control server", "SERVER_ENABLED is off", logger), nil
	}
	serverLogger := logger.New(log.SetComponent("control server"))
	return server.New(settings.ListeningAddress, controller, serverLogger)
}

//nolint:ireturn
func createHealthServer(address string, statusGetter health.StatusGetter,
	logger *log.Logger) (service goservices.Service, err error) {
	if address == "" {
		return noop.New("health server", "no listening address set", logger), nil
	}
	healthLogger := logger.New(log.SetComponent("health"))
	return health.NewServer(address, statusGetter, healthLogger)
}

var ErrComponentMissing = errors.New("component to install is missing")

func installCommand(ctx context.Context, command string, args []string,
	logger *log.Logger) (err error) {
	if len(args) == 0 {
		return fmt.Errorf("%w: must be one of service, schedule or cron", ErrComponentMissing)
	}

	component, err := install.ParseComponent(args[0])
	if err != nil {
		return err
	}

	executable, err := os.Executable()
	if err != nil {
		return fmt.Errorf("finding program executable: %w", err)
	}
	executable, err = filepath.EvalSymlinks(executable)
	if err != nil {
		return fmt.Errorf("finding program executable: %w", err)
	}

	installer := install.New(executable)
	if command == "uninstall" {
		err = installer.Uninstall(ctx, component)
		if err != nil {
			return fmt.Errorf("uninstalling %s: %w", component, err)
		}
		logger.Info(string(component) + " uninstalled")
		return nil
	}

	message, err := installer.Install(ctx, component)
	if err != nil {
		return fmt.Errorf("installing %s: %w", component, err)
	}
	logger.Info(string(component) + " installed")
	if message != "" {
		logger.Info(message)
	}
	return nil
}
