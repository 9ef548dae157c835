package observability

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"go.uber.org/zap"
)

// Metrics publishes resolver metrics to CloudWatch. Emission is
// best-effort: a metrics failure never fails the request.
type Metrics struct {
	namespace string
	client    *cloudwatch.Client
	logger    *zap.Logger
}

// NewMetrics creates a metrics instance
func NewMetrics(namespace string, client *cloudwatch.Client, logger *zap.Logger) *Metrics {
	return &Metrics{
		namespace: namespace,
		client:    client,
		logger:    logger,
	}
}

// RecordResolution publishes latency and outcome for one field resolution
func (m *Metrics) RecordResolution(ctx context.Context, field string, duration time.Duration, success bool) {
	if m.client == nil {
		return
	}

	dimensions := []types.Dimension{
		{Name: aws.String("Field"), Value: aws.String(field)},
	}

	errorCount := 0.0
	if !success {
		errorCount = 1.0
	}

	_, err := m.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(m.namespace),
		MetricData: []types.MetricDatum{
			{
				MetricName: aws.String("ResolutionLatency"),
				Dimensions: dimensions,
				Unit:       types.StandardUnitMilliseconds,
				Value:      aws.Float64(float64(duration.Milliseconds())),
			},
			{
				MetricName: aws.String("ResolutionErrors"),
				Dimensions: dimensions,
				Unit:       types.StandardUnitCount,
				Value:      aws.Float64(errorCount),
			},
		},
	})
	if err != nil {
		m.logger.Warn("Failed to publish metrics",
			zap.String("field", field),
			zap.Error(err),
		)
	}
}
