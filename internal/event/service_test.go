package event_test

import (
	"log/slog"
	"os"
	"time"

	eventDatamodel "github.com/tvintergoller/keep-informed/internal/core/datamodel/event"
	"github.com/tvintergoller/keep-informed/internal/event"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// MockRepository implements event.Repository for testing
type MockRepository struct {
	events []*eventDatamodel.Event
	nextID int64
}

func NewMockRepository() *MockRepository {
	return &MockRepository{nextID: 1}
}

func (m *MockRepository) Create(e *eventDatamodel.Event) error {
	e.ID = m.nextID
	m.nextID++
	m.events = append(m.events, e)
	return nil
}

func (m *MockRepository) GetAll(skip, limit int) ([]*eventDatamodel.Event, error) {
	if skip >= len(m.events) {
		return nil, nil
	}
	end := skip + limit
	if end > len(m.events) {
		end = len(m.events)
	}
	return m.events[skip:end], nil
}

var _ = Describe("Event Service", func() {
	var (
		service *event.Service
		start   time.Time
		end     time.Time
	)

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = event.NewService(NewMockRepository(), logger)
		start = time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)
		end = start.Add(2 * time.Hour)
	})

	Describe("CreateEvent", func() {
		It("should store the event with the supplied responsible id", func() {
			created, err := service.CreateEvent(event.CreateEventDTO{
				Title:         "standup",
				StartDate:     start,
				EndDate:       end,
				ResponsibleID: 4,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).To(BeNumerically(">", 0))
			Expect(created.ResponsibleID).To(Equal(int64(4)))
		})

		It("should reject missing required fields", func() {
			_, err := service.CreateEvent(event.CreateEventDTO{StartDate: start, EndDate: end, ResponsibleID: 4})
			Expect(err).To(HaveOccurred())
			_, err = service.CreateEvent(event.CreateEventDTO{Title: "t", EndDate: end, ResponsibleID: 4})
			Expect(err).To(HaveOccurred())
			_, err = service.CreateEvent(event.CreateEventDTO{Title: "t", StartDate: start, ResponsibleID: 4})
			Expect(err).To(HaveOccurred())
			_, err = service.CreateEvent(event.CreateEventDTO{Title: "t", StartDate: start, EndDate: end})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("ListEvents", func() {
		It("should apply skip and limit", func() {
			for _, title := range []string{"a", "b", "c"} {
				_, err := service.CreateEvent(event.CreateEventDTO{
					Title: title, StartDate: start, EndDate: end, ResponsibleID: 4,
				})
				Expect(err).NotTo(HaveOccurred())
			}

			page, err := service.ListEvents(2, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(page).To(HaveLen(1))
			Expect(page[0].Title).To(Equal("c"))
		})
	})
})
