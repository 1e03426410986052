package cli

import (
	"fmt"
	"io"

	"github.com/couchcryptid/pothole-dashboard/internal/adapter/kafka"
	"github.com/couchcryptid/pothole-dashboard/internal/observability"
	"github.com/couchcryptid/pothole-dashboard/internal/pipeline"
	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// PublishOptions holds flags for the publish command.
type PublishOptions struct {
	Brokers string
	Topic   string
}

// NewPublishCommand creates the publish command.
func NewPublishCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PublishOptions{}

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish every displayable record to Kafka",
		Long: `Read all records from the store and write them to the Kafka topic in
batches of BATCH_SIZE, keyed by record id. Failed batches are retried
with exponential backoff.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPublish(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Brokers, "brokers", "", "comma-separated brokers (defaults to KAFKA_BROKERS)")
	cmd.Flags().StringVar(&opts.Topic, "topic", "", "destination topic (defaults to KAFKA_TOPIC)")

	return cmd
}

func runPublish(rootOpts *RootOptions, opts *PublishOptions, cmd *cobra.Command) error {
	f := newFormatter(rootOpts, cmd)
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if opts.Brokers != "" {
		brokers := sharedcfg.ParseBrokers(opts.Brokers)
		if len(brokers) == 0 {
			return NewExitError(ExitCommandError, "invalid --brokers: no broker addresses")
		}
		cfg.KafkaBrokers = brokers
	}
	if opts.Topic != "" {
		cfg.KafkaTopic = opts.Topic
	}

	s, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	logger := f.Logger()
	w := kafka.NewWriter(cfg, logger)
	defer w.Close()

	p := pipeline.New(s, nil, logger, observability.NewMetricsWithRegistry(prometheus.NewRegistry()))
	n, err := p.Publish(ctx, w, pipeline.PublishOptions{BatchSize: cfg.BatchSize})
	if err != nil {
		return WrapExitError(ExitFailure, fmt.Sprintf("publish (%d records sent)", n), err)
	}

	return f.Success(map[string]any{"topic": cfg.KafkaTopic, "published": n}, func(w io.Writer) {
		fmt.Fprintf(w, "Published %d records to %s\n", n, cfg.KafkaTopic)
	})
}
