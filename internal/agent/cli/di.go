package cli

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-resume-builder/internal/agent/api"
	"github.com/IvanChernomyrdin/go-resume-builder/internal/agent/memory"
)

// для тестов
var (
	NewAPIClient = api.NewClient
	ReadPassword = func(cmd *cobra.Command, fromStdin bool) (string, error) {
		return readPassword(cmd, fromStdin)
	}
	SaveResumesToFile   = memory.SaveToFile
	LoadResumesFromFile = memory.LoadFromFile
	NewResumeID         = uuid.NewString
)
