package submission

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/PolarWolf314/soundness/internal/utils"
)

// Submission is a proof ready to be signed and sent.
type Submission struct {
	Proof         []byte
	ELF           []byte
	ProofFilename string
	ELFFilename   string
	ProvingSystem ProvingSystem
}

// RequestBody is the JSON document posted to the endpoint.
type RequestBody struct {
	Proof           string `json:"proof"`
	ELF             string `json:"elf"`
	ProofFilename   string `json:"proof_filename"`
	ELFFilename     string `json:"elf_filename"`
	ProvingSystem   string `json:"proving_system"`
	CanonicalString string `json:"canonical_string"`
}

// FromFiles reads the proof and ELF files and records their base names.
func FromFiles(proofPath, elfPath string, ps ProvingSystem) (*Submission, error) {
	proof, err := os.ReadFile(proofPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read proof file %s: %w", proofPath, err)
	}
	elf, err := os.ReadFile(elfPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read ELF file %s: %w", elfPath, err)
	}
	return &Submission{
		Proof:         proof,
		ELF:           elf,
		ProofFilename: utils.FileBaseName(proofPath),
		ELFFilename:   utils.FileBaseName(elfPath),
		ProvingSystem: ps,
	}, nil
}

func (s *Submission) provingSystem() string {
	if s.ProvingSystem == "" {
		return string(DefaultProvingSystem)
	}
	return string(s.ProvingSystem)
}

func filenameOrUnknown(name string) string {
	if name == "" {
		return "unknown"
	}
	return name
}

// CanonicalString returns the exact bytes that are signed.
func (s *Submission) CanonicalString() string {
	return strings.Join([]string{
		"proof:" + base64.StdEncoding.EncodeToString(s.Proof),
		"elf:" + base64.StdEncoding.EncodeToString(s.ELF),
		"proof_filename:" + filenameOrUnknown(s.ProofFilename),
		"elf_filename:" + filenameOrUnknown(s.ELFFilename),
		"proving_system:" + s.provingSystem(),
	}, "\n")
}

// Body returns the request document, canonical string included.
func (s *Submission) Body() RequestBody {
	return RequestBody{
		Proof:           base64.StdEncoding.EncodeToString(s.Proof),
		ELF:             base64.StdEncoding.EncodeToString(s.ELF),
		ProofFilename:   filenameOrUnknown(s.ProofFilename),
		ELFFilename:     filenameOrUnknown(s.ELFFilename),
		ProvingSystem:   s.provingSystem(),
		CanonicalString: s.CanonicalString(),
	}
}
