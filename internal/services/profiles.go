package services

import (
	"context"
	"maps"
	"strings"
	"sync"
	"time"

	"github.com/denmor86/ya-stitchmate/internal/logger"
	"github.com/denmor86/ya-stitchmate/internal/models"
	"github.com/denmor86/ya-stitchmate/internal/storage"
	"github.com/denmor86/ya-stitchmate/internal/validators"
)

type ProfilesService interface {
	Load(ctx context.Context)
	Upsert(ctx context.Context, name string, profile models.Profile) error
	Lookup(name string) (models.Profile, bool)
	All() map[string]models.Profile
}

// Profiles - кэш профилей постоянных клиентов по имени
type Profiles struct {
	Storage storage.IStorage

	mu       sync.RWMutex
	profiles map[string]models.Profile
}

// Создание сервиса
func NewProfiles(storage storage.IStorage) *Profiles {
	return &Profiles{Storage: storage, profiles: map[string]models.Profile{}}
}

func (s *Profiles) Load(ctx context.Context) {
	profiles := map[string]models.Profile{}
	readSlot(ctx, s.Storage, storage.ProfilesKey, &profiles)
	if profiles == nil {
		profiles = map[string]models.Profile{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles = profiles
	logger.Info("Profiles loaded:", len(profiles))
}

// Upsert - безусловно перезаписывает профиль клиента и сохраняет коллекцию
func (s *Profiles) Upsert(ctx context.Context, name string, profile models.Profile) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &validators.ValidationError{Field: "name", Message: "profile requires customer name"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := maps.Clone(s.profiles)
	if next == nil {
		next = map[string]models.Profile{}
	}
	next[name] = profile
	if err := writeSlot(ctx, s.Storage, storage.ProfilesKey, next); err != nil {
		return err
	}
	s.profiles = next
	logger.Info("Profile saved:", name)
	return nil
}

// Lookup - точное совпадение имени после обрезки пробелов
func (s *Profiles) Lookup(name string) (models.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[strings.TrimSpace(name)]
	return p, ok
}

func (s *Profiles) All() map[string]models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.profiles)
}

// ProfileFromOrder - профиль из только что сохранённого заказа
func ProfileFromOrder(order models.Order, now time.Time) models.Profile {
	return models.Profile{
		Type:       order.Type,
		Sizes:      maps.Clone(order.Sizes),
		Phone:      order.Phone,
		Address:    order.Address,
		Additional: order.Additional,
		UpdatedAt:  now.UTC(),
	}
}
