package services

import (
	"sync"

	"htbnotes/internal/models"
	"htbnotes/internal/providers"
	"htbnotes/internal/structures"
)

type SettingsServiceInterface interface {
	Load() error
	Get() structures.Settings
	Update(mutate func(*structures.Settings)) error

	Token() string
	SetToken(token string) error
	ClearToken() error

	TemplateConfigFor(kind models.Kind) structures.TypeTemplateConfig
	SetTemplateConfig(kind models.Kind, cfg structures.TypeTemplateConfig) error
}

// SettingsService owns the persisted settings blob. Every mutation
// goes through Update, which holds the store lock and writes the blob
// back before returning, so readers never observe unsaved state.
type SettingsService struct {
	conf    *structures.Config
	files   *SettingsFileManager
	logger  providers.Logger
	mu      sync.RWMutex
	current structures.Settings
}

func NewSettingsService(conf *structures.Config, files *SettingsFileManager, logger providers.Logger) (SettingsServiceInterface, error) {
	s := &SettingsService{
		conf:   conf,
		files:  files,
		logger: logger,
	}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SettingsService) Load() error {
	loaded, err := s.files.Load(s.conf.Vault.SettingsFile)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.current = *loaded
	s.mu.Unlock()
	return nil
}

func (s *SettingsService) Get() structures.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *SettingsService) Update(mutate func(*structures.Settings)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	mutate(&s.current)
	return s.files.Save(s.conf.Vault.SettingsFile, &s.current)
}

// Token returns the stored credential, falling back on the config
// bootstrap token when nothing is stored yet.
func (s *SettingsService) Token() string {
	s.mu.RLock()
	token := s.current.APIToken
	s.mu.RUnlock()
	if token == "" {
		token = s.conf.API.Token
	}
	return token
}

func (s *SettingsService) SetToken(token string) error {
	return s.Update(func(st *structures.Settings) {
		st.APIToken = token
	})
}

func (s *SettingsService) ClearToken() error {
	return s.SetToken("")
}

// TemplateConfigFor resolves the per-type template config. Absent type
// configs fall back on the legacy flat fields so pre-split settings
// files keep working.
func (s *SettingsService) TemplateConfigFor(kind models.Kind) structures.TypeTemplateConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if cfg := templateFor(&s.current, kind); cfg != nil {
		return *cfg
	}

	return structures.TypeTemplateConfig{
		DefaultDataFilePath:       s.current.DefaultDataFilePath,
		DefaultFileNameTemplate:   s.current.DefaultFileNameTemplate,
		DefaultAttachmentPath:     s.current.DefaultAttachmentPath,
		UseDefaultBuiltInTemplate: s.current.UseDefaultBuiltInTemplate,
		DefaultTemplateFile:       s.current.DefaultTemplateFile,
		DefaultTemplateContent:    s.current.DefaultTemplateContent,
		FolderRules:               s.current.FolderRules,
		EnableFolderRules:         s.current.EnableFolderRules,
	}
}

func (s *SettingsService) SetTemplateConfig(kind models.Kind, cfg structures.TypeTemplateConfig) error {
	return s.Update(func(st *structures.Settings) {
		switch kind {
		case models.KindChallenge:
			st.ChallengeTemplate = &cfg
		case models.KindSherlock:
			st.SherlockTemplate = &cfg
		default:
			st.MachineTemplate = &cfg
		}
	})
}

func templateFor(st *structures.Settings, kind models.Kind) *structures.TypeTemplateConfig {
	switch kind {
	case models.KindChallenge:
		return st.ChallengeTemplate
	case models.KindSherlock:
		return st.SherlockTemplate
	default:
		return st.MachineTemplate
	}
}

// cachedListFor returns the mutable cache slot for a record type.
func cachedListFor(st *structures.Settings, kind models.Kind) *structures.CachedList {
	switch kind {
	case models.KindChallenge:
		return &st.ChallengeCache
	case models.KindSherlock:
		return &st.SherlockCache
	default:
		return &st.MachineCache
	}
}
