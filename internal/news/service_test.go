package news_test

import (
	"log/slog"
	"os"
	"sort"

	"github.com/tvintergoller/keep-informed/internal"
	newsDatamodel "github.com/tvintergoller/keep-informed/internal/core/datamodel/news"
	"github.com/tvintergoller/keep-informed/internal/news"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// MockRepository implements news.Repository for testing
type MockRepository struct {
	items      map[int64]*newsDatamodel.News
	nextID     int64
	shouldFail bool
	failError  error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		items:  make(map[int64]*newsDatamodel.News),
		nextID: 1,
	}
}

func (m *MockRepository) Create(item *newsDatamodel.News) error {
	if m.shouldFail {
		return m.failError
	}
	item.ID = m.nextID
	m.nextID++
	m.items[item.ID] = item
	return nil
}

func (m *MockRepository) GetAllNewestFirst() ([]*newsDatamodel.News, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	result := make([]*newsDatamodel.News, 0, len(m.items))
	for _, item := range m.items {
		result = append(result, item)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *MockRepository) GetByID(id int64) (*newsDatamodel.News, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	item, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return item, nil
}

func (m *MockRepository) Delete(id int64) error {
	if m.shouldFail {
		return m.failError
	}
	delete(m.items, id)
	return nil
}

var _ = Describe("News Service", func() {
	var (
		mockRepo *MockRepository
		service  *news.Service
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = news.NewService(mockRepo, logger)
	})

	Describe("CreateNews", func() {
		It("should attribute the post to the given author and stamp creation time", func() {
			item, err := service.CreateNews(news.CreateNewsDTO{Title: "t", Content: "c"}, 7)
			Expect(err).NotTo(HaveOccurred())
			Expect(item.ID).To(BeNumerically(">", 0))
			Expect(item.CreatedBy).To(Equal(int64(7)))
			Expect(item.CreatedAt).NotTo(BeZero())
		})

		It("should reject an empty title or content", func() {
			_, err := service.CreateNews(news.CreateNewsDTO{Title: "", Content: "c"}, 7)
			Expect(err).To(HaveOccurred())
			_, err = service.CreateNews(news.CreateNewsDTO{Title: "t", Content: ""}, 7)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("DeleteNews", func() {
		var postID int64

		BeforeEach(func() {
			item, err := service.CreateNews(news.CreateNewsDTO{Title: "t", Content: "c"}, 7)
			Expect(err).NotTo(HaveOccurred())
			postID = item.ID
		})

		It("should delete a post owned by the caller", func() {
			Expect(service.DeleteNews(postID, 7)).To(Succeed())

			remaining, err := service.ListNews()
			Expect(err).NotTo(HaveOccurred())
			Expect(remaining).To(BeEmpty())
		})

		It("should refuse deletion by a different user and keep the row", func() {
			err := service.DeleteNews(postID, 8)
			Expect(err).To(Equal(internal.ErrNewsNotFoundOrForbidden))

			remaining, listErr := service.ListNews()
			Expect(listErr).NotTo(HaveOccurred())
			Expect(remaining).To(HaveLen(1))
		})

		It("should report a missing post with the same error as a foreign one", func() {
			err := service.DeleteNews(999, 7)
			Expect(err).To(Equal(internal.ErrNewsNotFoundOrForbidden))
		})
	})
})
