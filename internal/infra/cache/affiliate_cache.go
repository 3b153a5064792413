// Package cache LRU-кэш аффилиатов поверх репозитория.
// Документ расписания маленький и читается на каждый публичный запрос
// календаря, поэтому держим его в памяти и сбрасываем при любой записи.
package cache

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/m04kA/SMC-AffiliateScheduler/internal/domain"
)

// AffiliateRepository интерфейс нижележащего репозитория аффилиатов
type AffiliateRepository interface {
	Create(ctx context.Context, affiliate *domain.Affiliate) (*domain.Affiliate, error)
	GetByID(ctx context.Context, id int64) (*domain.Affiliate, error)
	UpdateSchedule(ctx context.Context, id int64, schedule domain.AvailabilitySchedule) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AffiliateCache кэширующая обёртка над репозиторием аффилиатов.
// Инвалидация прямая: любая запись расписания удаляет запись из кэша,
// следующее чтение пойдёт в БД.
type AffiliateCache struct {
	repo   AffiliateRepository
	cache  *lru.Cache[int64, *domain.Affiliate]
	mu     sync.RWMutex
	logger Logger
}

// NewAffiliateCache создает кэширующую обёртку с LRU на size записей
func NewAffiliateCache(repo AffiliateRepository, size int, logger Logger) (*AffiliateCache, error) {
	cache, err := lru.New[int64, *domain.Affiliate](size)
	if err != nil {
		return nil, err
	}

	return &AffiliateCache{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}, nil
}

// Create создает аффилиата и сразу кладет его в кэш
func (c *AffiliateCache) Create(ctx context.Context, affiliate *domain.Affiliate) (*domain.Affiliate, error) {
	created, err := c.repo.Create(ctx, affiliate)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cache.Add(created.ID, created)
	c.mu.Unlock()

	return created, nil
}

// GetByID возвращает аффилиата из кэша или из репозитория
func (c *AffiliateCache) GetByID(ctx context.Context, id int64) (*domain.Affiliate, error) {
	c.mu.RLock()
	cached, ok := c.cache.Get(id)
	c.mu.RUnlock()

	if ok {
		return cached, nil
	}

	affiliate, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cache.Add(id, affiliate)
	c.mu.Unlock()

	return affiliate, nil
}

// UpdateSchedule пишет расписание в репозиторий и инвалидирует кэш
func (c *AffiliateCache) UpdateSchedule(ctx context.Context, id int64, schedule domain.AvailabilitySchedule) error {
	if err := c.repo.UpdateSchedule(ctx, id, schedule); err != nil {
		return err
	}

	c.mu.Lock()
	c.cache.Remove(id)
	c.mu.Unlock()

	return nil
}
