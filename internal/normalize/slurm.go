package normalize

import (
	"fmt"

	"github.com/rnacentral/pipeline-setup/pkg/domain"
)

// DefaultTimeLimit is the SLURM wall-clock limit used when none was given.
const DefaultTimeLimit = "240:00:00"

// SlurmConfig is the normalized job-submission view.
// JobName, OutputFile and ErrorFile are always derived from Release.
type SlurmConfig struct {
	TimeLimit  string
	Email      string
	Release    string
	JobName    string
	OutputFile string
	ErrorFile  string
}

// Slurm normalizes raw answers into a SlurmConfig.
// A blank release or time limit is treated as absent.
func Slurm(raw domain.Answers) (SlurmConfig, error) {
	release, err := raw.String(domain.FieldRelease.Key(), DefaultRelease)
	if err != nil {
		return SlurmConfig{}, err
	}
	if release == "" {
		release = DefaultRelease
	}

	timeLimit, err := raw.String(domain.FieldTimeLimit.Key(), DefaultTimeLimit)
	if err != nil {
		return SlurmConfig{}, err
	}
	if timeLimit == "" {
		timeLimit = DefaultTimeLimit
	}

	email, err := raw.String(domain.FieldEmail.Key(), "")
	if err != nil {
		return SlurmConfig{}, err
	}

	return SlurmConfig{
		TimeLimit:  timeLimit,
		Email:      email,
		Release:    release,
		JobName:    fmt.Sprintf("Release %s", release),
		OutputFile: fmt.Sprintf("out_release%s", release),
		ErrorFile:  fmt.Sprintf("err_release%s", release),
	}, nil
}
