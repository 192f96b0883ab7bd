package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/career-predictor/internal/logger"
	"github.com/spigell/career-predictor/internal/metrics"
	"github.com/spigell/career-predictor/internal/predictor"
	"github.com/spigell/career-predictor/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Train the model and serve the questionnaire over HTTP",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", "", "address to listen on (default :8050)")

	viper.BindPFlag("server.listen", serveCmd.Flags().Lookup("listen"))
}

// serve trains the model and blocks until SIGINT or SIGTERM.
func serve() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, config := setup()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	handle := initialize(ctx, logger, config, predictor.WithMetrics(metrics.New(reg)))

	srv := server.New(handle, config.Server.server(), reg, logger)
	if err := srv.Run(ctx); err != nil {
		logger.Fatal("serving http", zap.Error(err))
	}

	logger.Info("exiting", zap.String("reason", "shutdown completed"))
}

// setup builds the logger and decodes the configuration. Failures are fatal.
func setup() (*zap.Logger, *Config) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the career-predictor", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	return logger, config
}

// initialize trains the classifier. The process cannot do anything useful
// without it, so a failure is fatal.
func initialize(ctx context.Context, logger *zap.Logger, config *Config, opts ...predictor.Option) *predictor.Handle {
	opts = append([]predictor.Option{predictor.WithLogger(logger)}, opts...)

	handle, err := predictor.Initialize(ctx, config.Model.predictor(), opts...)
	if err != nil {
		logger.Fatal("initializing the predictor", zap.Error(err))
	}

	return handle
}
