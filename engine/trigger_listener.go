package engine

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"

	"code.cloudfoundry.org/lager"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/tedsuo/ifrit"

	"github.com/pivotal-cf/cred-audit/metrics"
	"github.com/pivotal-cf/cred-audit/models"
)

const (
	triggersReceivedMetric = "engine.triggers_received"
	triggersDroppedMetric  = "engine.triggers_dropped"
)

//go:generate counterfeiter . SQSAPI

type SQSAPI interface {
	GetQueueUrl(*sqs.GetQueueUrlInput) (*sqs.GetQueueUrlOutput, error)
	ReceiveMessageWithContext(aws.Context, *sqs.ReceiveMessageInput, ...request.Option) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(*sqs.DeleteMessageInput) (*sqs.DeleteMessageOutput, error)
}

// Trigger is the body of an automated scan request.
type Trigger struct {
	ProjectID string `json:"project_id"`
}

type triggerListener struct {
	logger     lager.Logger
	service    SQSAPI
	queueName  string
	engine     Engine
	dispatcher Dispatcher

	receivedCounter metrics.Counter
	droppedCounter  metrics.Counter
}

// NewTriggerListener returns a runner that starts an automated scan for
// every trigger message on the queue.
func NewTriggerListener(
	logger lager.Logger,
	service SQSAPI,
	queueName string,
	engine Engine,
	dispatcher Dispatcher,
	emitter metrics.Emitter,
) ifrit.Runner {
	return &triggerListener{
		logger:     logger,
		service:    service,
		queueName:  queueName,
		engine:     engine,
		dispatcher: dispatcher,

		receivedCounter: emitter.Counter(triggersReceivedMetric),
		droppedCounter:  emitter.Counter(triggersDroppedMetric),
	}
}

func (l *triggerListener) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	logger := l.logger.Session("trigger-listener", lager.Data{"queue": l.queueName})
	logger.Info("starting")
	defer logger.Info("done")

	resp, err := l.service.GetQueueUrl(&sqs.GetQueueUrlInput{
		QueueName: aws.String(l.queueName),
	})
	if err != nil {
		logger.Error("failed-to-get-queue-url", err)
		return err
	}
	queueURL := resp.QueueUrl

	close(ready)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errs := make(chan error, 1)
	go func() {
		errs <- l.listen(ctx, logger, queueURL)
	}()

	select {
	case <-signals:
		cancel()
		<-errs
		return nil
	case err := <-errs:
		return err
	}
}

func (l *triggerListener) listen(ctx context.Context, logger lager.Logger, queueURL *string) error {
	params := &sqs.ReceiveMessageInput{
		QueueUrl:            queueURL,
		MaxNumberOfMessages: aws.Int64(10),
		VisibilityTimeout:   aws.Int64(60),
		WaitTimeSeconds:     aws.Int64(20),
	}

	for {
		response, err := l.service.ReceiveMessageWithContext(ctx, params)
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			logger.Error("failed-to-receive-messages", err)
			return err
		}

		for _, message := range response.Messages {
			if l.handle(logger, message) {
				l.ack(logger, queueURL, message)
			}
		}
	}
}

// handle reports whether the message is done with and can be deleted.
func (l *triggerListener) handle(logger lager.Logger, message *sqs.Message) bool {
	logger = logger.Session("handle-trigger", lager.Data{
		"message": aws.StringValue(message.MessageId),
	})
	l.receivedCounter.Inc(logger)

	var trigger Trigger
	err := json.Unmarshal([]byte(aws.StringValue(message.Body)), &trigger)
	if err != nil || strings.TrimSpace(trigger.ProjectID) == "" {
		logger.Info("dropping-malformed-trigger")
		l.droppedCounter.Inc(logger)
		return true
	}

	scan, err := l.engine.Start(logger, trigger.ProjectID, models.ScanTypeAutomated, nil)
	switch {
	case err == nil:
		l.dispatcher.Dispatch(logger, scan)
		return true
	case errors.Is(err, models.ErrScanInProgress), errors.Is(err, models.ErrNotFound):
		logger.Info("dropping-trigger", lager.Data{"project": trigger.ProjectID, "reason": err.Error()})
		l.droppedCounter.Inc(logger)
		return true
	default:
		logger.Error("failed-to-start-scan", err, lager.Data{"project": trigger.ProjectID})
		return false
	}
}

func (l *triggerListener) ack(logger lager.Logger, queueURL *string, message *sqs.Message) {
	_, err := l.service.DeleteMessage(&sqs.DeleteMessageInput{
		QueueUrl:      queueURL,
		ReceiptHandle: message.ReceiptHandle,
	})
	if err != nil {
		logger.Error("failed-to-delete-message", err)
	}
}
