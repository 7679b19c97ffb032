package record

import "rizoma/internal/keys"

// Deployment identities, fixed at build time.
const (
	ProgramID       = "Hac29kvvQ3vMEu3CzsALtciEwKYULtYuKcifebNFFhrE"
	SystemProgramID = "11111111111111111111111111111111"
)

var (
	ProgramKey       = keys.MustParsePublicKey(ProgramID)
	SystemProgramKey = keys.MustParsePublicKey(SystemProgramID)
)

// AccountStorageOverhead is the per-account metadata charged on top of the data length.
const AccountStorageOverhead = 128

type Rent struct {
	LamportsPerByteYear uint64  `yaml:"lamports_per_byte_year" envconfig:"LAMPORTS_PER_BYTE_YEAR"`
	ExemptionThreshold  float64 `yaml:"exemption_threshold" envconfig:"EXEMPTION_THRESHOLD"`
}

var DefaultRent = Rent{
	LamportsPerByteYear: 3480,
	ExemptionThreshold:  2.0,
}

// MinimumBalance is the lamports an account of dataLen bytes must hold to be rent exempt.
func (r Rent) MinimumBalance(dataLen int) uint64 {
	bytesCharged := uint64(AccountStorageOverhead + dataLen)
	return uint64(float64(bytesCharged*r.LamportsPerByteYear) * r.ExemptionThreshold)
}
