package template

import (
	"sort"
	"strings"

	"htbnotes/internal/models"
	"htbnotes/internal/providers"
	"htbnotes/internal/structures"
)

// Loader fetches external template files referenced from settings.
type Loader interface {
	LoadTemplate(path string) (string, error)
}

// Resolver picks the template for a note. Folder rules win over the
// type default, the type default over the built-in. A rule that
// matches but whose templates cannot be produced falls through to the
// default chain instead of trying further rules.
type Resolver struct {
	loader Loader
	logger providers.Logger
}

func NewResolver(loader Loader, logger providers.Logger) *Resolver {
	return &Resolver{loader: loader, logger: logger}
}

func (r *Resolver) Resolve(cfg structures.TypeTemplateConfig, kind models.Kind, targetPath string) string {
	if tpl := r.matchFolderRules(cfg, targetPath); tpl != "" {
		return tpl
	}
	return r.defaultTemplate(cfg, kind)
}

func (r *Resolver) matchFolderRules(cfg structures.TypeTemplateConfig, targetPath string) string {
	if !cfg.EnableFolderRules || len(cfg.FolderRules) == 0 {
		return ""
	}

	// Highest priority first; ties keep configured order.
	rules := make([]structures.FolderRule, 0, len(cfg.FolderRules))
	for _, rule := range cfg.FolderRules {
		if rule.Enabled {
			rules = append(rules, rule)
		}
	}
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority > rules[j].Priority
	})

	for _, rule := range rules {
		if rule.FolderPath == "" {
			continue
		}
		if !ruleMatches(rule, targetPath, cfg.LegacySubstringMatch) {
			continue
		}
		return r.loadRuleTemplate(rule)
	}
	return ""
}

// ruleMatches reports whether a rule's folder path covers targetPath.
// Legacy configs matched by plain substring; current ones compare
// path segments, optionally descending into subfolders.
func ruleMatches(rule structures.FolderRule, targetPath string, legacy bool) bool {
	if legacy {
		path := strings.ToLower(strings.ReplaceAll(targetPath, "\\", "/"))
		pattern := strings.ToLower(strings.ReplaceAll(rule.FolderPath, "\\", "/"))
		return strings.Contains(path, pattern)
	}

	path := strings.Trim(targetPath, "/")
	folder := strings.Trim(rule.FolderPath, "/")
	if rule.MatchSubfolders {
		return path == folder || strings.HasPrefix(path, folder+"/")
	}
	parent := ""
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		parent = path[:idx]
	}
	return parent == folder
}

// loadRuleTemplate produces the template for a matched rule, or ""
// when the rule cannot serve one and the default chain should apply.
func (r *Resolver) loadRuleTemplate(rule structures.FolderRule) string {
	if rule.UseBuiltInTemplate {
		if strings.TrimSpace(rule.TemplateContent) != "" {
			return rule.TemplateContent
		}
		if strings.TrimSpace(rule.TemplateFile) != "" {
			if tpl, err := r.loader.LoadTemplate(rule.TemplateFile); err == nil && tpl != "" {
				return tpl
			}
		}
		return ""
	}

	if strings.TrimSpace(rule.TemplateFile) != "" {
		tpl, err := r.loader.LoadTemplate(rule.TemplateFile)
		if err == nil && tpl != "" {
			return tpl
		}
		r.logger.Warnf(providers.TypeImport, "Template file for rule %q failed to load, using default", rule.Name)
	}
	return ""
}

func (r *Resolver) defaultTemplate(cfg structures.TypeTemplateConfig, kind models.Kind) string {
	if cfg.UseDefaultBuiltInTemplate {
		if strings.TrimSpace(cfg.DefaultTemplateContent) != "" {
			return cfg.DefaultTemplateContent
		}
		return BuiltinFor(kind)
	}

	if strings.TrimSpace(cfg.DefaultTemplateFile) != "" {
		if tpl, err := r.loader.LoadTemplate(cfg.DefaultTemplateFile); err == nil && tpl != "" {
			return tpl
		}
		r.logger.Warnf(providers.TypeImport, "Default template file %q failed to load, using built-in", cfg.DefaultTemplateFile)
	}
	return BuiltinFor(kind)
}
