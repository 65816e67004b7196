package structures

import "htbnotes/internal/models"

// FolderRule maps a vault folder to a template override. Among enabled
// rules whose path matches the target, the highest Priority wins; ties
// keep configured order.
type FolderRule struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Enabled            bool   `json:"enabled"`
	Priority           int    `json:"priority"`
	FolderPath         string `json:"folderPath"`
	MatchSubfolders    bool   `json:"matchSubfolders"`
	FileNameTemplate   string `json:"fileNameTemplate,omitempty"`
	UseBuiltInTemplate bool   `json:"useBuiltInTemplate"`
	TemplateFile       string `json:"templateFile,omitempty"`
	TemplateContent    string `json:"templateContent,omitempty"`
}

// TypeTemplateConfig is the per-record-type template configuration.
type TypeTemplateConfig struct {
	DefaultDataFilePath       string       `json:"defaultDataFilePath"`
	DefaultFileNameTemplate   string       `json:"defaultFileNameTemplate"`
	DefaultAttachmentPath     string       `json:"defaultAttachmentPath"`
	UseDefaultBuiltInTemplate bool         `json:"useDefaultBuiltInTemplate"`
	DefaultTemplateFile       string       `json:"defaultTemplateFile"`
	DefaultTemplateContent    string       `json:"defaultTemplateContent"`
	FolderRules               []FolderRule `json:"folderTemplateRules"`
	EnableFolderRules         bool         `json:"enableFolderTemplates"`
	// Pre-rule-system configs matched rule paths as plain substrings.
	LegacySubstringMatch bool `json:"legacySubstringMatch,omitempty"`
}

// CachedList is one record type's persisted list cache.
type CachedList struct {
	Items     []models.SearchItem `json:"items"`
	FetchedAt int64               `json:"fetchedAt"` // unix millis, 0 = never
}

// Settings is the whole persisted user-state blob: token, template
// configs and list caches. Static runtime config (paths, timeouts)
// stays in Config; everything a command can mutate lives here.
type Settings struct {
	APIToken string `json:"apiToken"`

	// Legacy flat template fields, kept as the fallback when a type
	// config is absent (mirrors the machine config historically).
	DefaultDataFilePath       string       `json:"defaultDataFilePath"`
	DefaultFileNameTemplate   string       `json:"defaultFileNameTemplate"`
	DefaultAttachmentPath     string       `json:"defaultAttachmentPath"`
	UseDefaultBuiltInTemplate bool         `json:"useDefaultBuiltInTemplate"`
	DefaultTemplateFile       string       `json:"defaultTemplateFile"`
	DefaultTemplateContent    string       `json:"defaultTemplateContent"`
	FolderRules               []FolderRule `json:"folderTemplateRules"`
	EnableFolderRules         bool         `json:"enableFolderTemplates"`

	MachineTemplate   *TypeTemplateConfig `json:"machineTemplate,omitempty"`
	ChallengeTemplate *TypeTemplateConfig `json:"challengeTemplate,omitempty"`
	SherlockTemplate  *TypeTemplateConfig `json:"sherlockTemplate,omitempty"`

	MachineCache   CachedList `json:"machineCache"`
	ChallengeCache CachedList `json:"challengeCache"`
	SherlockCache  CachedList `json:"sherlockCache"`

	OpenAfterCreate bool `json:"openAfterCreate"`
}
