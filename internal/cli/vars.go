package cli

import (
	"github.com/flowstate-dev/focusring/internal/audio"
	"github.com/flowstate-dev/focusring/internal/log"
	"github.com/flowstate-dev/focusring/pkg/models"
)

// Service instances, set during app initialization in app.go.
var (
	Config *models.GlobalConfig
	Logger log.Logger
	Chime  audio.Player
)
