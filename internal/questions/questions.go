// Package questions declares the two questionnaires asked on every run:
// one confirmation per eligible source database, then the fixed pipeline settings.
package questions

import (
	"fmt"

	"github.com/rnacentral/pipeline-setup/pkg/domain"
	"github.com/rnacentral/pipeline-setup/pkg/dsl"
)

// Precompute release methods, in the order they are offered.
const (
	MethodRelease = "release"
	MethodQuery   = "query"
	MethodAll     = "all"
)

// DefaultTimeLimit is the SLURM wall-clock limit offered by default.
const DefaultTimeLimit = "240:00:00"

// Databases builds one yes/no question per eligible database, each defaulting to yes.
func Databases(ids []string) []domain.Question {
	out := make([]domain.Question, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Question{
			Kind:    domain.KindBoolean,
			Key:     id,
			Prompt:  fmt.Sprintf("Do you want to import %s?", id),
			Default: true,
		})
	}
	return out
}

// Pipeline builds the ordered pipeline questionnaire.
// Nested options are only shown when their governing stage is enabled.
func Pipeline() []domain.Question {
	b := dsl.New()

	b.Confirm(domain.FieldNotify.Key(), "Turn on notification?").
		Default(true)

	b.Text(domain.FieldRelease.Key(), "Enter the release version (e.g. 27):").
		Validate(domain.Digits(domain.MsgInvalidNumber))

	b.Confirm(domain.FieldGenomeMapping.Key(), "Do you want to run genome mapping?").
		Default(true)

	b.Confirm(domain.FieldCPAT.Key(), "Do you want to run CPAT?").
		Default(true)

	b.Confirm(domain.FieldQA.Key(), "Do you want to run QA?").
		Default(true)
	b.Confirm(domain.FieldQARfam.Key(), "Do you want to run Rfam QA?").
		Default(true).
		WhenTrue(domain.FieldQA.Key(), false)
	b.Confirm(domain.FieldQADfam.Key(), "Do you want to run Dfam QA?").
		Default(false).
		WhenTrue(domain.FieldQA.Key(), false)
	b.Confirm(domain.FieldQAPfam.Key(), "Do you want to run Pfam QA?").
		Default(false).
		WhenTrue(domain.FieldQA.Key(), false)

	b.Confirm(domain.FieldPrecomputeRun.Key(), "Do you want to run precompute?").
		Default(true)
	b.Select(domain.FieldPrecomputeMethod.Key(), "Which release method should precompute use?",
		MethodRelease, MethodQuery, MethodAll).
		Default(MethodRelease).
		WhenTrue(domain.FieldPrecomputeRun.Key(), true)

	b.Confirm(domain.FieldR2DTRun.Key(), "Do you want to run R2DT?").
		Default(true)
	b.Text(domain.FieldR2DTPublish.Key(), "Where should R2DT publish the secondary structures?").
		Instruction("Leave blank to use default location").
		WhenTrue(domain.FieldR2DTRun.Key(), true)

	b.Confirm(domain.FieldExportSequenceSearch.Key(), "Do you want to run sequence search export?").
		Default(true)
	b.Confirm(domain.FieldExportFTP.Key(), "Do you want to run FTP export?").
		Default(true)
	b.Confirm(domain.FieldExportSearch.Key(), "Do you want to run text search export?").
		Default(true)

	b.Text(domain.FieldTimeLimit.Key(), "Enter SLURM time limit (HH:MM:SS):").
		Default(DefaultTimeLimit)
	b.Text(domain.FieldEmail.Key(), "Enter email for SLURM notifications (leave blank for none):")

	return b.MustBuild()
}
