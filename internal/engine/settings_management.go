package engine

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/gcbaptista/go-boggle-engine/config"
	"github.com/gcbaptista/go-boggle-engine/internal/errors"
	"github.com/gcbaptista/go-boggle-engine/internal/jobs"
	"github.com/gcbaptista/go-boggle-engine/model"
)

func (e *Engine) prepareSettingsUpdate(name string, newSettings config.SolverSettings) (*DictionaryInstance, config.SolverSettings, error) {
	instance, err := e.instance(name)
	if err != nil {
		return nil, newSettings, err
	}

	if newSettings.Name != "" && newSettings.Name != name {
		return nil, newSettings, errors.NewValidationError("name", fmt.Sprintf("cannot change dictionary name from '%s' to '%s' during settings update, use rename", name, newSettings.Name))
	}
	newSettings.Name = name
	newSettings.ApplyDefaults()
	if problems := newSettings.Validate(); len(problems) > 0 {
		return nil, newSettings, errors.NewValidationError("settings", problems[0])
	}

	return instance, newSettings, nil
}

// UpdateSettings applies new settings. A representation switch rebuilds the structure
// before returning.
func (e *Engine) UpdateSettings(name string, newSettings config.SolverSettings) error {
	instance, settings, err := e.prepareSettingsUpdate(name, newSettings)
	if err != nil {
		return err
	}

	instance.setSettings(settings)
	// Always converge: an earlier async request may still be pending.
	if instance.rebuild(nil) {
		log.Printf("Dictionary '%s' rebuilt as %s.", name, instance.Info().Representation)
	}
	log.Printf("Settings for dictionary '%s' updated.", name)
	return nil
}

// UpdateSettingsAsync applies the settings immediately and runs a needed rebuild as a job.
// The returned job ID is empty when nothing had to be rebuilt.
func (e *Engine) UpdateSettingsAsync(name string, newSettings config.SolverSettings) (string, error) {
	instance, settings, err := e.prepareSettingsUpdate(name, newSettings)
	if err != nil {
		return "", err
	}

	if !instance.setSettings(settings) {
		log.Printf("Settings for dictionary '%s' updated.", name)
		return "", nil
	}

	metadata := map[string]string{
		"operation":  "rebuild_dictionary",
		"compressed": strconv.FormatBool(settings.Compressed),
	}
	return e.submit(model.JobTypeRebuildDictionary, name, metadata, func(_ context.Context, progress jobs.ProgressFunc) error {
		instance.rebuild(func(done, total int) {
			progress(done, total, "rebuilding dictionary")
		})
		log.Printf("Dictionary '%s' rebuilt as %s (async).", name, instance.Info().Representation)
		return nil
	})
}
