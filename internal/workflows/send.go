package workflows

import (
	"context"
	"errors"

	"github.com/PolarWolf314/soundness/internal/audit"
	kerrors "github.com/PolarWolf314/soundness/internal/errors"
	"github.com/PolarWolf314/soundness/internal/signer"
	"github.com/PolarWolf314/soundness/internal/submission"
)

// SendOptions configures the send workflow.
type SendOptions struct {
	// Signer signs the canonical string.
	Signer *signer.Signer

	// Client posts the signed submission.
	Client *submission.Client

	// ProofPath and ELFPath are the files to submit.
	ProofPath string
	ELFPath   string

	// KeyName is the key pair used for signing.
	KeyName string

	// ProvingSystem defaults to sp1.
	ProvingSystem submission.ProvingSystem

	// OnFilesRead, if set, is called once both files are read and before
	// the signer asks for a password.
	OnFilesRead func()

	// OnSigned, if set, is called after signing and before the request is sent.
	OnSigned func()
}

// SendResult contains the outcome of a send operation.
type SendResult struct {
	// Endpoint is where the submission was posted.
	Endpoint string

	// Response is the server's answer. It is also set when the server
	// rejected the submission.
	Response *submission.Response
}

// Send reads the proof and ELF files, signs their canonical string with
// KeyName, and posts them to the endpoint.
//
// Returns ErrKeyNotFound, ErrSecretNotStored or ErrAuthentication from signing.
// Returns ErrSubmissionRejected, along with a result holding the server's
// answer, if the endpoint responds with a non-2xx status.
func Send(ctx context.Context, opts SendOptions) (*SendResult, error) {
	ps := opts.ProvingSystem
	if ps == "" {
		ps = submission.DefaultProvingSystem
	}

	sub, err := submission.FromFiles(opts.ProofPath, opts.ELFPath, ps)
	if err != nil {
		return nil, err
	}
	if opts.OnFilesRead != nil {
		opts.OnFilesRead()
	}
	body := sub.Body()

	sig, err := opts.Signer.Sign(ctx, []byte(body.CanonicalString), opts.KeyName)
	if err != nil {
		return nil, err
	}
	pub, err := opts.Signer.PublicKey(opts.KeyName)
	if err != nil {
		return nil, err
	}
	if opts.OnSigned != nil {
		opts.OnSigned()
	}

	resp, err := opts.Client.Send(ctx, body, sig, pub)
	if err != nil && !errors.Is(err, kerrors.ErrSubmissionRejected) {
		return nil, err
	}

	entry := audit.LogWithUser(audit.OpSend)
	entry.KeyName = opts.KeyName
	entry.Endpoint = opts.Client.Endpoint
	entry.ProvingSystem = string(ps)
	entry.Status = resp.StatusCode
	audit.Log(entry)

	return &SendResult{Endpoint: opts.Client.Endpoint, Response: resp}, err
}
