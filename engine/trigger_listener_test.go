package engine_test

import (
	"errors"
	"sync"

	"code.cloudfoundry.org/lager/lagertest"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/sqs"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/ginkgomon"

	"github.com/pivotal-cf/cred-audit/db"
	"github.com/pivotal-cf/cred-audit/engine"
	"github.com/pivotal-cf/cred-audit/engine/enginefakes"
	"github.com/pivotal-cf/cred-audit/metrics"
	"github.com/pivotal-cf/cred-audit/models"
)

var _ = Describe("TriggerListener", func() {
	var (
		logger     *lagertest.TestLogger
		service    *enginefakes.FakeSQSAPI
		fakeEng    *enginefakes.FakeEngine
		dispatcher *enginefakes.FakeDispatcher

		messages []*sqs.Message
		process  ifrit.Process
	)

	message := func(id, body string) *sqs.Message {
		return &sqs.Message{
			MessageId:     aws.String(id),
			ReceiptHandle: aws.String("receipt-" + id),
			Body:          aws.String(body),
		}
	}

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("trigger-listener")
		service = &enginefakes.FakeSQSAPI{}
		fakeEng = &enginefakes.FakeEngine{}
		dispatcher = &enginefakes.FakeDispatcher{}

		service.GetQueueUrlReturns(&sqs.GetQueueUrlOutput{QueueUrl: aws.String("https://queue")}, nil)

		var once sync.Once
		service.ReceiveMessageWithContextStub = func(ctx aws.Context, input *sqs.ReceiveMessageInput, _ ...request.Option) (*sqs.ReceiveMessageOutput, error) {
			delivered := false
			once.Do(func() { delivered = true })
			if delivered {
				return &sqs.ReceiveMessageOutput{Messages: messages}, nil
			}

			<-ctx.Done()
			return nil, ctx.Err()
		}
	})

	JustBeforeEach(func() {
		runner := engine.NewTriggerListener(logger, service, "triggers", fakeEng, dispatcher, metrics.BuildEmitter(false, "", nil))
		process = ginkgomon.Invoke(runner)
	})

	AfterEach(func() {
		ginkgomon.Interrupt(process)
	})

	deletedReceipts := func() []string {
		var receipts []string
		for i := 0; i < service.DeleteMessageCallCount(); i++ {
			receipts = append(receipts, aws.StringValue(service.DeleteMessageArgsForCall(i).ReceiptHandle))
		}
		return receipts
	}

	Context("with a valid trigger", func() {
		BeforeEach(func() {
			messages = []*sqs.Message{message("1", `{"project_id":"project-1"}`)}
			fakeEng.StartReturns(db.Scan{Model: db.Model{ID: "scan-1"}, ProjectID: "project-1"}, nil)
		})

		It("starts an automated scan, dispatches it and deletes the message", func() {
			Eventually(dispatcher.DispatchCallCount).Should(Equal(1))

			_, projectID, scanType, triggeredBy := fakeEng.StartArgsForCall(0)
			Expect(projectID).To(Equal("project-1"))
			Expect(scanType).To(Equal(models.ScanTypeAutomated))
			Expect(triggeredBy).To(BeNil())

			_, scan := dispatcher.DispatchArgsForCall(0)
			Expect(scan.ID).To(Equal("scan-1"))

			Eventually(deletedReceipts).Should(ConsistOf("receipt-1"))

			input := service.GetQueueUrlArgsForCall(0)
			Expect(aws.StringValue(input.QueueName)).To(Equal("triggers"))
		})
	})

	Context("with malformed triggers", func() {
		BeforeEach(func() {
			messages = []*sqs.Message{
				message("1", `not json`),
				message("2", `{"project_id":""}`),
			}
		})

		It("drops them", func() {
			Eventually(deletedReceipts).Should(ConsistOf("receipt-1", "receipt-2"))
			Expect(fakeEng.StartCallCount()).To(BeZero())
		})
	})

	Context("when the project is already being scanned or does not exist", func() {
		BeforeEach(func() {
			messages = []*sqs.Message{
				message("1", `{"project_id":"busy"}`),
				message("2", `{"project_id":"gone"}`),
			}
			fakeEng.StartReturnsOnCall(0, db.Scan{}, models.ErrScanInProgress)
			fakeEng.StartReturnsOnCall(1, db.Scan{}, models.NotFoundError{Resource: "project", ID: "gone"})
		})

		It("drops the triggers without dispatching", func() {
			Eventually(deletedReceipts).Should(ConsistOf("receipt-1", "receipt-2"))
			Expect(dispatcher.DispatchCallCount()).To(BeZero())
		})
	})

	Context("when starting the scan fails otherwise", func() {
		BeforeEach(func() {
			messages = []*sqs.Message{message("1", `{"project_id":"project-1"}`)}
			fakeEng.StartReturns(db.Scan{}, errors.New("database unavailable"))
		})

		It("leaves the message on the queue for a retry", func() {
			Eventually(fakeEng.StartCallCount).Should(Equal(1))
			Consistently(service.DeleteMessageCallCount).Should(BeZero())
		})
	})
})

var _ = Describe("TriggerListener startup", func() {
	It("exits when the queue cannot be found", func() {
		service := &enginefakes.FakeSQSAPI{}
		service.GetQueueUrlReturns(nil, errors.New("no such queue"))

		runner := engine.NewTriggerListener(lagertest.NewTestLogger("trigger-listener"), service, "triggers", &enginefakes.FakeEngine{}, &enginefakes.FakeDispatcher{}, metrics.BuildEmitter(false, "", nil))
		process := ifrit.Background(runner)

		Eventually(process.Wait()).Should(Receive(MatchError("no such queue")))
	})
})
