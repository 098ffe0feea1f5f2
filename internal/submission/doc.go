// Package submission builds and sends signed proof submissions.
//
// A submission carries a proof file and an ELF file, both base64 encoded,
// along with their base names and the proving system that produced the
// proof. The canonical string is what gets signed:
//
//	proof:<base64>
//	elf:<base64>
//	proof_filename:<name>
//	elf_filename:<name>
//	proving_system:<id>
//
// Lines are joined with "\n" and there is no trailing newline.
//
// The request is a JSON POST to <endpoint>/api/proof with the base64
// signature in X-Signature and the base64 public key in X-Public-Key. Any
// non-2xx answer is reported as ErrSubmissionRejected.
package submission
