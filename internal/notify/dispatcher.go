package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/abir-25/doctors-portal-server/internal/pkg/logging"
)

const (
	defaultQueueSize = 64
	sendTimeout      = 15 * time.Second
)

var errQueueFull = errors.New("notify: queue full, confirmation dropped")

// BookingConfirmation is the payload of the booking-confirmation email.
type BookingConfirmation struct {
	Patient     string
	PatientName string
	Treatment   string
	Date        string
	Slot        string
}

// Dispatcher delivers booking confirmations off the request path. Delivery is
// at-most-once, best-effort: a full queue drops the message and a send
// failure is logged; neither ever reaches the booking caller.
type Dispatcher struct {
	sender EmailSender
	logger *logging.Logger
	jobs   chan BookingConfirmation

	mu      sync.Mutex
	stopped bool
	wg      sync.WaitGroup
}

func NewDispatcher(sender EmailSender, logger *logging.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.Default()
	}
	d := &Dispatcher{
		sender: sender,
		logger: logger,
		jobs:   make(chan BookingConfirmation, defaultQueueSize),
	}
	d.wg.Add(1)
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for job := range d.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		if err := d.sender.Send(ctx, confirmationEmail(job)); err != nil {
			d.logger.Error("booking confirmation send failed",
				"patient", job.Patient,
				"treatment", job.Treatment,
				"error", err,
			)
		}
		cancel()
	}
}

// NotifyBookingConfirmed enqueues a confirmation. Never blocks the caller.
func (d *Dispatcher) NotifyBookingConfirmed(_ context.Context, patient, patientName, treatment, date, slot string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return errQueueFull
	}

	job := BookingConfirmation{
		Patient:     patient,
		PatientName: patientName,
		Treatment:   treatment,
		Date:        date,
		Slot:        slot,
	}
	select {
	case d.jobs <- job:
		return nil
	default:
		d.logger.Warn("notification queue full, dropping confirmation", "patient", patient)
		return errQueueFull
	}
}

// Stop drains queued confirmations and waits for the worker to exit.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.jobs)
	d.mu.Unlock()

	d.wg.Wait()
}

func confirmationEmail(job BookingConfirmation) EmailMessage {
	return EmailMessage{
		To:      job.Patient,
		ToName:  job.PatientName,
		Subject: fmt.Sprintf("Your appointment for %s is confirmed", job.Treatment),
		Body:    fmt.Sprintf("Your appointment for %s is confirmed. Please visit us on %s at %s.", job.Treatment, job.Date, job.Slot),
		HTML: fmt.Sprintf(`<h3>Your appointment is confirmed</h3>
<div>
  <p>Your appointment for treatment %s</p>
  <p>Please visit us on %s at %s</p>
  <p>Thanks from Doctors Portal</p>
</div>`, job.Treatment, job.Date, job.Slot),
	}
}
