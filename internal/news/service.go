package news

import (
	"log/slog"
	"time"

	"github.com/tvintergoller/keep-informed/internal"
	newsDatamodel "github.com/tvintergoller/keep-informed/internal/core/datamodel/news"
)

// Repository defines the data access methods for news posts. GetByID returns
// (nil, nil) when no row matches.
type Repository interface {
	Create(item *newsDatamodel.News) error
	GetAllNewestFirst() ([]*newsDatamodel.News, error)
	GetByID(id int64) (*newsDatamodel.News, error)
	Delete(id int64) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateNews stores a post attributed to the caller-supplied author id.
func (s *Service) CreateNews(dto CreateNewsDTO, authorID int64) (*News, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	record := &newsDatamodel.News{
		Title:     dto.Title,
		Content:   dto.Content,
		CreatedAt: time.Now(),
		CreatedBy: authorID,
	}
	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create news", "error", err, "author_id", authorID)
		return nil, err
	}

	s.logger.Info("news created", "news_id", record.ID, "author_id", authorID)

	return FromDataModel(record), nil
}

func (s *Service) ListNews() ([]*News, error) {
	records, err := s.repo.GetAllNewestFirst()
	if err != nil {
		s.logger.Error("failed to list news", "error", err)
		return nil, err
	}

	return FromDataModelSlice(records), nil
}

// DeleteNews removes a post only when the caller-supplied id matches its
// author. A missing post and a post owned by someone else produce the same
// error so the response does not reveal whether the post exists.
func (s *Service) DeleteNews(newsID, callerID int64) error {
	record, err := s.repo.GetByID(newsID)
	if err != nil {
		s.logger.Error("failed to look up news", "error", err, "news_id", newsID)
		return err
	}

	if record == nil || record.CreatedBy != callerID {
		return internal.ErrNewsNotFoundOrForbidden
	}

	if err := s.repo.Delete(newsID); err != nil {
		s.logger.Error("failed to delete news", "error", err, "news_id", newsID)
		return err
	}

	s.logger.Info("news deleted", "news_id", newsID, "author_id", callerID)

	return nil
}
