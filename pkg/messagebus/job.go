package messagebus

import "github.com/riverqueue/river"

// JobArgs carries one outbound message through the job queue.
type JobArgs struct {
	// Message is the formatted text to deliver.
	Message string `json:"message"`
}

// Kind returns the job kind identifier used by the queue.
func (JobArgs) Kind() string {
	return "DeliverOutboundMessage"
}

var _ river.JobArgs = JobArgs{}
