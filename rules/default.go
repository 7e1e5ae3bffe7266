package rules

import "github.com/pivotal-cf/cred-audit/sniff"

const RulesVersion = 1

func DefaultTable() Table {
	return Table{
		NewPatternRule(sniff.NewDefaultSniffer()),
		SensitiveKeyRule{},
		EntropyRule{},
		TransmissionRule{},
		NewWeakEncryptionRule(),
		PublicExposureRule{},
		ActivityRule{},
	}
}
