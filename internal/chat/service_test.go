package chat_test

import (
	"log/slog"
	"os"

	"github.com/tvintergoller/keep-informed/internal"
	"github.com/tvintergoller/keep-informed/internal/chat"
	chatDatamodel "github.com/tvintergoller/keep-informed/internal/core/datamodel/chat"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// MockRepository implements chat.Repository for testing. Messages keep
// insertion order, which stands in for the timestamp ordering of the real
// repository.
type MockRepository struct {
	messages   []*chatDatamodel.ChatMessage
	nextID     int64
	shouldFail bool
	failError  error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{nextID: 1}
}

func (m *MockRepository) Create(msg *chatDatamodel.ChatMessage) error {
	if m.shouldFail {
		return m.failError
	}
	msg.ID = m.nextID
	m.nextID++
	m.messages = append(m.messages, msg)
	return nil
}

func (m *MockRepository) GetBetween(userA, userB int64) ([]*chatDatamodel.ChatMessage, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	var result []*chatDatamodel.ChatMessage
	for _, msg := range m.messages {
		if (msg.SenderID == userA && msg.ReceiverID == userB) ||
			(msg.SenderID == userB && msg.ReceiverID == userA) {
			result = append(result, msg)
		}
	}
	return result, nil
}

func (m *MockRepository) GetByParticipant(userID int64) ([]*chatDatamodel.ChatMessage, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	var result []*chatDatamodel.ChatMessage
	for _, msg := range m.messages {
		if msg.SenderID == userID || msg.ReceiverID == userID {
			result = append(result, msg)
		}
	}
	return result, nil
}

var _ = Describe("Chat Service", func() {
	var (
		mockRepo *MockRepository
		service  *chat.Service
	)

	send := func(from, to int64, text string) {
		_, err := service.SendMessage(chat.SendMessageDTO{Text: text, SenderID: from, ReceiverID: to})
		Expect(err).NotTo(HaveOccurred())
	}

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = chat.NewService(mockRepo, logger)
	})

	Describe("SendMessage", func() {
		It("should store the message with a timestamp", func() {
			msg, err := service.SendMessage(chat.SendMessageDTO{Text: "hi", SenderID: 1, ReceiverID: 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(msg.ID).To(BeNumerically(">", 0))
			Expect(msg.Timestamp).NotTo(BeZero())
		})

		It("should reject missing fields", func() {
			_, err := service.SendMessage(chat.SendMessageDTO{SenderID: 1, ReceiverID: 2})
			Expect(err).To(HaveOccurred())
			_, err = service.SendMessage(chat.SendMessageDTO{Text: "hi", ReceiverID: 2})
			Expect(err).To(HaveOccurred())
			_, err = service.SendMessage(chat.SendMessageDTO{Text: "hi", SenderID: 1})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("MessagesBetween", func() {
		It("should return both directions of the conversation in order", func() {
			send(1, 2, "first")
			send(2, 1, "second")
			send(1, 3, "unrelated")

			msgs, err := service.MessagesBetween(1, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(msgs).To(HaveLen(2))
			Expect(msgs[0].Text).To(Equal("first"))
			Expect(msgs[1].Text).To(Equal("second"))
		})

		It("should report an empty conversation as not found", func() {
			_, err := service.MessagesBetween(1, 2)
			Expect(err).To(Equal(internal.ErrMessagesNotFound))
		})
	})

	Describe("Correspondents", func() {
		It("should list distinct partners in order of first contact", func() {
			send(1, 2, "a")
			send(3, 1, "b")
			send(1, 2, "c")
			send(1, 4, "d")

			partners, err := service.Correspondents(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(partners).To(Equal([]int64{2, 3, 4}))
		})

		It("should not list the user as their own correspondent", func() {
			send(1, 1, "note to self")
			_, err := service.Correspondents(1)
			Expect(err).To(Equal(internal.ErrConversationsNotFound))
		})

		It("should report no conversations as not found", func() {
			_, err := service.Correspondents(1)
			Expect(err).To(Equal(internal.ErrConversationsNotFound))
		})
	})
})
