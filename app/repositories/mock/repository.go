package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"blogpost/app/models"
	"blogpost/app/repositories"
)

// BlogPostRepository is an in-memory repositories.BlogPostRepository.
// Set Err to make every call fail with it.
type BlogPostRepository struct {
	posts  map[string]*models.BlogPost
	order  []string
	nextID int
	mutex  sync.RWMutex

	Err   error
	Calls int
}

var _ repositories.BlogPostRepository = (*BlogPostRepository)(nil)

func NewBlogPostRepository() *BlogPostRepository {
	return &BlogPostRepository{
		posts:  make(map[string]*models.BlogPost),
		nextID: 1,
	}
}

func (m *BlogPostRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.posts = make(map[string]*models.BlogPost)
	m.order = nil
	m.nextID = 1
	m.Calls = 0
}

func (m *BlogPostRepository) Insert(ctx context.Context, post *models.BlogPost) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.Calls++
	if m.Err != nil {
		return m.Err
	}

	post.ID = fmt.Sprintf("post-%d", m.nextID)
	m.nextID++
	if post.Created.IsZero() {
		post.Created = time.Now().UTC()
	}
	stored := *post
	m.posts[post.ID] = &stored
	m.order = append(m.order, post.ID)
	return nil
}

func (m *BlogPostRepository) FindByID(ctx context.Context, id string) (*models.BlogPost, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	found := *post
	return &found, nil
}

func (m *BlogPostRepository) FindAll(ctx context.Context, limit int) ([]*models.BlogPost, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}

	posts := make([]*models.BlogPost, 0, len(m.order))
	for _, id := range m.order {
		if limit > 0 && len(posts) >= limit {
			break
		}
		found := *m.posts[id]
		posts = append(posts, &found)
	}
	return posts, nil
}

func (m *BlogPostRepository) UpdateByID(ctx context.Context, id string, patch models.BlogPostPatch) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.Calls++
	if m.Err != nil {
		return m.Err
	}

	post, exists := m.posts[id]
	if !exists {
		return repositories.ErrNotFound
	}
	post.Apply(patch)
	return nil
}

func (m *BlogPostRepository) DeleteByID(ctx context.Context, id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.Calls++
	if m.Err != nil {
		return m.Err
	}

	if _, exists := m.posts[id]; !exists {
		return nil
	}
	delete(m.posts, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *BlogPostRepository) Count(ctx context.Context) (int, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.posts), nil
}

func (m *BlogPostRepository) Ping(ctx context.Context) error {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.Err
}
