package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-boggle-engine/config"
	"github.com/gcbaptista/go-boggle-engine/services"
)

// CreateDictionaryHandler handles the request to create a new dictionary.
// Request Body: config.SolverSettings
func (api *API) CreateDictionaryHandler(c *gin.Context) {
	var settings config.SolverSettings

	if result := ValidateJSONBinding(c, &settings); result.HasErrors() {
		SendValidationError(c, result)
		return
	}
	if result := ValidateSettings(&settings); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if err := api.engine.CreateDictionary(settings); err != nil {
		SendEngineError(c, err, settings.Name, "create dictionary")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Dictionary '" + settings.Name + "' created successfully",
		"settings": settings,
	})
}

// ListDictionariesHandler lists all dictionaries with their sizes.
func (api *API) ListDictionariesHandler(c *gin.Context) {
	names := api.engine.ListDictionaries()
	infos := make([]services.DictionaryInfo, 0, len(names))
	for _, name := range names {
		dict, err := api.engine.GetDictionary(name)
		if err != nil {
			continue // deleted since listing
		}
		infos = append(infos, dict.Info())
	}
	c.JSON(http.StatusOK, gin.H{"dictionaries": infos, "count": len(infos)})
}

// GetDictionaryHandler returns the settings and size of one dictionary.
func (api *API) GetDictionaryHandler(c *gin.Context) {
	name := c.Param("name")
	dict, err := api.engine.GetDictionary(name)
	if err != nil {
		SendEngineError(c, err, name, "get dictionary")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"settings": dict.Settings(),
		"info":     dict.Info(),
	})
}

// DeleteDictionaryHandler handles deleting a dictionary.
func (api *API) DeleteDictionaryHandler(c *gin.Context) {
	name := c.Param("name")
	if err := api.engine.DeleteDictionary(name); err != nil {
		SendEngineError(c, err, name, "delete dictionary")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Dictionary '" + name + "' deleted successfully"})
}

// RenameDictionaryRequest defines the structure for renaming a dictionary
type RenameDictionaryRequest struct {
	NewName string `json:"new_name"`
}

// RenameDictionaryHandler handles requests to rename a dictionary
func (api *API) RenameDictionaryHandler(c *gin.Context) {
	oldName := c.Param("name")

	var req RenameDictionaryRequest
	if result := ValidateJSONBinding(c, &req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}
	if result := ValidateRenameRequest(oldName, req.NewName); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if err := api.engine.RenameDictionary(oldName, req.NewName); err != nil {
		SendEngineError(c, err, oldName, "rename dictionary")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Dictionary '" + oldName + "' renamed to '" + req.NewName + "'",
		"old_name": oldName,
		"new_name": req.NewName,
	})
}

// GetSettingsHandler returns a dictionary's settings.
func (api *API) GetSettingsHandler(c *gin.Context) {
	name := c.Param("name")
	settings, err := api.engine.GetSettings(name)
	if err != nil {
		SendEngineError(c, err, name, "get settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// SettingsUpdateRequest is a partial settings update; absent fields keep their value.
type SettingsUpdateRequest struct {
	MaxResults     *int  `json:"max_results,omitempty"`
	MinWordLength  *int  `json:"min_word_length,omitempty"`
	Compressed     *bool `json:"compressed,omitempty"`
	ParallelStarts *bool `json:"parallel_starts,omitempty"`
}

func (req *SettingsUpdateRequest) apply(settings config.SolverSettings) config.SolverSettings {
	if req.MaxResults != nil {
		settings.MaxResults = *req.MaxResults
	}
	if req.MinWordLength != nil {
		settings.MinWordLength = *req.MinWordLength
	}
	if req.Compressed != nil {
		settings.Compressed = *req.Compressed
	}
	if req.ParallelStarts != nil {
		settings.ParallelStarts = *req.ParallelStarts
	}
	return settings
}

// UpdateSettingsHandler applies a partial settings update. With ?async=true a needed
// rebuild runs as a background job and the response carries its ID.
func (api *API) UpdateSettingsHandler(c *gin.Context) {
	name := c.Param("name")

	var req SettingsUpdateRequest
	if result := ValidateJSONBinding(c, &req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}
	if result := ValidateSettingsUpdate(&req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	current, err := api.engine.GetSettings(name)
	if err != nil {
		SendEngineError(c, err, name, "update settings")
		return
	}
	updated := req.apply(current)

	if c.Query("async") == "true" {
		jobID, err := api.engine.UpdateSettingsAsync(name, updated)
		if err != nil {
			SendEngineError(c, err, name, "update settings")
			return
		}
		if jobID != "" {
			c.JSON(http.StatusAccepted, gin.H{
				"status":  "accepted",
				"message": "Settings updated, rebuild of dictionary '" + name + "' started",
				"job_id":  jobID,
			})
			return
		}
	} else if err := api.engine.UpdateSettings(name, updated); err != nil {
		SendEngineError(c, err, name, "update settings")
		return
	}

	settings, err := api.engine.GetSettings(name)
	if err != nil {
		SendEngineError(c, err, name, "update settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Settings for dictionary '" + name + "' updated",
		"settings": settings,
	})
}

// AddWordsRequest is a bulk word upload.
type AddWordsRequest struct {
	Words []string `json:"words"`
	Async bool     `json:"async"`
}

// AddWordsHandler adds words to a dictionary, synchronously or as a background job.
func (api *API) AddWordsHandler(c *gin.Context) {
	name := c.Param("name")

	var req AddWordsRequest
	if result := ValidateJSONBinding(c, &req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}
	if result := ValidateWords(req.Words); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if req.Async {
		jobID, err := api.engine.AddWordsAsync(name, req.Words)
		if err != nil {
			SendEngineError(c, err, name, "add words")
			return
		}
		c.JSON(http.StatusAccepted, gin.H{
			"status":  "accepted",
			"message": "Adding words to dictionary '" + name + "'",
			"job_id":  jobID,
		})
		return
	}

	result, err := api.engine.AddWords(name, req.Words)
	if err != nil {
		SendEngineError(c, err, name, "add words")
		return
	}
	c.JSON(http.StatusOK, result)
}
