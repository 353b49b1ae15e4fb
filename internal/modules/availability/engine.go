package availability

import "github.com/abir-25/doctors-portal-server/internal/domain"

// Remaining computes, for each service, the subset of its slot template not
// yet taken by a booking for the same treatment. The caller is expected to
// pass bookings already filtered to a single date.
//
// Pure and side-effect free: querying availability never reserves anything.
// Template order is preserved in the result.
func Remaining(services []domain.Service, bookings []domain.Booking) []domain.Service {
	out := make([]domain.Service, 0, len(services))
	for _, svc := range services {
		booked := make(map[string]struct{})
		for _, b := range bookings {
			if b.Treatment == svc.Name {
				booked[b.Slot] = struct{}{}
			}
		}

		open := make([]string, 0, len(svc.Slots))
		for _, slot := range svc.Slots {
			if _, taken := booked[slot]; !taken {
				open = append(open, slot)
			}
		}

		svc.Slots = open
		out = append(out, svc)
	}
	return out
}
