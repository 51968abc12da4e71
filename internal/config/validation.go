package config

import (
	"errors"
	"fmt"
	"maps"
	"regexp"
	"slices"

	"github.com/modu-ai/scaffold/pkg/plugin"
)

// Dynamic token patterns that must not appear in decision values.
// These indicate unexpanded template or shell variables.
var dynamicTokenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\{[^}]+\}`),        // ${VAR}
	regexp.MustCompile(`\{\{[^}]+\}\}`),      // {{VAR}}
	regexp.MustCompile(`\$[A-Z_][A-Z0-9_]*`), // $VAR
}

// @MX:ANCHOR: [AUTO] Validate is the only gate between caller options and a scaffold run.
// @MX:REASON: [AUTO] fan_in=3, called from the orchestrator, the CLI and tests
// Validate checks opts and returns a canonical copy.
// DependencyUpdaters defaults to an empty map; no other field is defaulted.
// On failure it returns *ValidationErrors listing every offending field.
func Validate(opts Options) (*Options, error) {
	var errs []ValidationError

	for _, name := range slices.Sorted(maps.Keys(opts.Languages)) {
		errs = append(errs, validatePlugin("languages", name, opts.Languages[name])...)
	}
	for _, name := range slices.Sorted(maps.Keys(opts.VcsHosts)) {
		errs = append(errs, validatePlugin("vcsHosts", name, opts.VcsHosts[name])...)
	}
	for _, name := range slices.Sorted(maps.Keys(opts.DependencyUpdaters)) {
		errs = append(errs, validatePlugin("dependencyUpdaters", name, opts.DependencyUpdaters[name])...)
	}

	for _, q := range opts.Decisions.Questions() {
		v, _ := opts.Decisions.Lookup(q)
		errs = append(errs, checkStringField(fmt.Sprintf("decisions.%s", q), v)...)
	}
	errs = append(errs, checkStringField("overrides.copyrightHolder", opts.Overrides.CopyrightHolder)...)

	if len(errs) > 0 {
		return nil, &ValidationErrors{Errors: errs}
	}

	validated := opts
	validated.Languages = maps.Clone(opts.Languages)
	validated.VcsHosts = maps.Clone(opts.VcsHosts)
	validated.DependencyUpdaters = maps.Clone(opts.DependencyUpdaters)
	if validated.DependencyUpdaters == nil {
		validated.DependencyUpdaters = map[string]plugin.DependencyUpdater{}
	}
	return &validated, nil
}

// validatePlugin checks a single named plugin value.
// p is the plugin as stored in the options map, so a nil interface and a
// typed nil both reach here.
func validatePlugin(section, name string, p any) []ValidationError {
	field := fmt.Sprintf("%s.%s", section, name)

	if name == "" {
		return []ValidationError{{
			Field:   section,
			Message: "plugin name must not be empty",
			Wrapped: ErrInvalidConfig,
		}}
	}
	if p == nil {
		return []ValidationError{{
			Field:   field,
			Message: "plugin is required",
			Wrapped: ErrInvalidConfig,
		}}
	}

	v, ok := p.(plugin.Validator)
	if !ok {
		return nil
	}
	err := v.Validate()
	if err == nil {
		return nil
	}

	var errs []ValidationError
	if errors.Is(err, plugin.ErrMissingScaffolder) {
		errs = append(errs, ValidationError{
			Field:   field + ".scaffolder",
			Message: "scaffolder is required",
			Wrapped: ErrInvalidConfig,
		})
	}
	if errors.Is(err, plugin.ErrMissingPrompt) {
		errs = append(errs, ValidationError{
			Field:   field + ".prompt",
			Message: "prompt is required",
			Wrapped: ErrInvalidConfig,
		})
	}
	if len(errs) == 0 {
		errs = append(errs, ValidationError{
			Field:   field,
			Message: err.Error(),
			Wrapped: ErrInvalidConfig,
		})
	}
	return errs
}

// checkStringField checks a single string field for dynamic token patterns.
func checkStringField(field, value string) []ValidationError {
	if value == "" {
		return nil
	}
	for _, pattern := range dynamicTokenPatterns {
		if match := pattern.FindString(value); match != "" {
			return []ValidationError{
				{
					Field:   field,
					Message: fmt.Sprintf("contains unexpanded dynamic token: %s", match),
					Value:   value,
					Wrapped: ErrDynamicToken,
				},
			}
		}
	}
	return nil
}
