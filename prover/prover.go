// Package prover generates Groth16 proofs that a Sudoku puzzle was solved.
// The givens are public inputs and the completed grid stays private, so a
// proof convinces a verifier the puzzle has a solution without revealing
// it. Proofs are exported in a Solidity-compatible format.
package prover

import (
	"bytes"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/pflow-xyz/go-sudoku/grid"
)

// Prover manages circuit compilation, setup, and proof generation for the
// Sudoku solution circuit. Setup runs once, lazily; when a key directory
// is configured the keys are persisted there and reused across runs.
type Prover struct {
	mu     sync.RWMutex
	curve  ecc.ID
	keyDir string
	cc     *CompiledCircuit
}

// CompiledCircuit holds the compiled circuit and keys.
type CompiledCircuit struct {
	CS           constraint.ConstraintSystem
	ProvingKey   groth16.ProvingKey
	VerifyingKey groth16.VerifyingKey
	Constraints  int
	PublicVars   int
	PrivateVars  int
}

// ProofResult contains the generated proof and public inputs.
type ProofResult struct {
	// Proof points for Solidity verification
	A [2]*big.Int    `json:"a"`
	B [2][2]*big.Int `json:"b"`
	C [2]*big.Int    `json:"c"`

	// Raw proof as flat array for L1 submission: [A.X, A.Y, B.X[0], B.X[1], B.Y[0], B.Y[1], C.X, C.Y]
	RawProof []*big.Int `json:"raw_proof"`

	// Public inputs (as hex strings for Solidity)
	PublicInputs []string `json:"public_inputs"`

	// Metadata
	PuzzleCID   string `json:"puzzle_cid"`
	Constraints int    `json:"constraints"`
}

// New creates a prover without key persistence.
func New() *Prover {
	return &Prover{
		curve: ecc.BN254, // Ethereum's alt_bn128
	}
}

// NewWithKeyDir creates a prover that caches its keys under dir. A cached
// key set is reused only while its circuit hash still matches.
func NewWithKeyDir(dir string) *Prover {
	p := New()
	p.keyDir = dir
	return p
}

// Setup compiles the circuit and runs trusted setup. It is idempotent and
// safe to call concurrently; Prove and Verify call it as needed.
func (p *Prover) Setup() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.setupLocked()
}

func (p *Prover) setupLocked() error {
	if p.cc != nil {
		return nil
	}

	// Compile to R1CS
	cs, err := frontend.Compile(p.curve.ScalarField(), r1cs.NewBuilder, &SolutionCircuit{})
	if err != nil {
		return fmt.Errorf("circuit compilation failed: %w", err)
	}

	if p.keyDir != "" {
		if cc, err := loadCurrent(p.keyDir, p.curve, cs); err == nil {
			p.cc = cc
			return nil
		}
	}

	// Trusted setup (in production, use ceremony or universal setup)
	pk, vk, err := groth16.Setup(cs)
	if err != nil {
		return fmt.Errorf("setup failed: %w", err)
	}

	cc := &CompiledCircuit{
		CS:           cs,
		ProvingKey:   pk,
		VerifyingKey: vk,
		Constraints:  cs.GetNbConstraints(),
		PublicVars:   cs.GetNbPublicVariables(),
		PrivateVars:  cs.GetNbSecretVariables(),
	}
	if p.keyDir != "" {
		if err := cc.SaveTo(p.keyDir); err != nil {
			return fmt.Errorf("persist keys: %w", err)
		}
	}
	p.cc = cc
	return nil
}

// Circuit returns the compiled circuit, running setup if needed.
func (p *Prover) Circuit() (*CompiledCircuit, error) {
	p.mu.RLock()
	cc := p.cc
	p.mu.RUnlock()
	if cc != nil {
		return cc, nil
	}

	if err := p.Setup(); err != nil {
		return nil, err
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cc, nil
}

// prove runs the shared witness/prove pipeline.
func (p *Prover) prove(puzzle, solution *grid.Grid) (groth16.Proof, witness.Witness, *CompiledCircuit, error) {
	cc, err := p.Circuit()
	if err != nil {
		return nil, nil, nil, err
	}

	assignment, err := NewAssignment(puzzle, solution)
	if err != nil {
		return nil, nil, nil, err
	}

	// Create witness from assignment
	w, err := frontend.NewWitness(assignment, p.curve.ScalarField())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("witness creation failed: %w", err)
	}

	// Generate proof
	proof, err := groth16.Prove(cc.CS, cc.ProvingKey, w)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("proof generation failed: %w", err)
	}

	// Extract public witness
	publicWitness, err := w.Public()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("public witness extraction failed: %w", err)
	}

	return proof, publicWitness, cc, nil
}

// Prove generates a Groth16 proof that solution completes puzzle, in
// Solidity-compatible form.
func (p *Prover) Prove(puzzle, solution *grid.Grid) (*ProofResult, error) {
	proof, publicWitness, cc, err := p.prove(puzzle, solution)
	if err != nil {
		return nil, err
	}

	result, err := proofToSolidity(proof, publicWitness, cc)
	if err != nil {
		return nil, fmt.Errorf("proof conversion failed: %w", err)
	}
	result.PuzzleCID = puzzle.CID()

	return result, nil
}

// ProveRaw generates a proof in gnark's native form, suitable for
// SaveProof and later VerifyProof.
func (p *Prover) ProveRaw(puzzle, solution *grid.Grid) (groth16.Proof, error) {
	proof, _, _, err := p.prove(puzzle, solution)
	return proof, err
}

// Verify proves and verifies locally (before on-chain submission).
func (p *Prover) Verify(puzzle, solution *grid.Grid) error {
	proof, publicWitness, cc, err := p.prove(puzzle, solution)
	if err != nil {
		return err
	}
	return groth16.Verify(proof, cc.VerifyingKey, publicWitness)
}

// VerifyProof checks a previously generated proof against a puzzle's
// public givens. The verifying key must come from the same setup that
// produced the proof, so pair this with a persistent key directory.
func (p *Prover) VerifyProof(proof groth16.Proof, puzzle *grid.Grid) error {
	cc, err := p.Circuit()
	if err != nil {
		return err
	}

	publicWitness, err := frontend.NewWitness(NewPublicAssignment(puzzle), p.curve.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return fmt.Errorf("public witness creation failed: %w", err)
	}

	return groth16.Verify(proof, cc.VerifyingKey, publicWitness)
}

// proofToSolidity converts a gnark proof to Solidity-compatible format.
func proofToSolidity(proof groth16.Proof, publicWitness witness.Witness, cc *CompiledCircuit) (*ProofResult, error) {
	result := &ProofResult{
		Constraints: cc.Constraints,
	}

	// Extract public inputs from witness
	pubBytes, err := publicWitness.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("marshal public witness: %w", err)
	}

	// Parse public inputs (each is 32 bytes for BN254)
	// Skip the first 12 bytes (header: 4 bytes curve ID + 4 bytes nb public + 4 bytes nb secret)
	const headerSize = 12
	const elementSize = 32

	if len(pubBytes) >= headerSize {
		data := pubBytes[headerSize:]
		numElements := len(data) / elementSize
		result.PublicInputs = make([]string, numElements)

		for i := 0; i < numElements; i++ {
			start := i * elementSize
			end := start + elementSize
			if end <= len(data) {
				val := new(big.Int).SetBytes(data[start:end])
				result.PublicInputs[i] = fmt.Sprintf("0x%064x", val)
			}
		}
	}

	// Extract proof points using WriteTo interface
	var proofBuf bytes.Buffer
	if _, err := proof.WriteTo(&proofBuf); err != nil {
		return nil, fmt.Errorf("marshal proof: %w", err)
	}
	proofBytes := proofBuf.Bytes()

	// Initialize with zeros for safety
	result.A[0] = big.NewInt(0)
	result.A[1] = big.NewInt(0)
	result.B[0][0] = big.NewInt(0)
	result.B[0][1] = big.NewInt(0)
	result.B[1][0] = big.NewInt(0)
	result.B[1][1] = big.NewInt(0)
	result.C[0] = big.NewInt(0)
	result.C[1] = big.NewInt(0)

	// Uncompressed: A (G1 64) + B (G2 128) + C (G1 64) = 256 bytes.
	// Compressed: A (32) + B (64) + C (32) = 128 bytes.
	if len(proofBytes) >= 256 {
		// A point (G1): bytes 0-63
		result.A[0] = new(big.Int).SetBytes(proofBytes[0:32])
		result.A[1] = new(big.Int).SetBytes(proofBytes[32:64])

		// B point (G2): bytes 64-191
		result.B[0][0] = new(big.Int).SetBytes(proofBytes[64:96])
		result.B[0][1] = new(big.Int).SetBytes(proofBytes[96:128])
		result.B[1][0] = new(big.Int).SetBytes(proofBytes[128:160])
		result.B[1][1] = new(big.Int).SetBytes(proofBytes[160:192])

		// C point (G1): bytes 192-255
		result.C[0] = new(big.Int).SetBytes(proofBytes[192:224])
		result.C[1] = new(big.Int).SetBytes(proofBytes[224:256])
	} else if len(proofBytes) >= 128 {
		// Compressed points would need decompression for Solidity;
		// store the raw coordinates as-is.
		result.A[0] = new(big.Int).SetBytes(proofBytes[0:32])
		result.B[0][0] = new(big.Int).SetBytes(proofBytes[32:64])
		result.B[0][1] = new(big.Int).SetBytes(proofBytes[64:96])
		result.C[0] = new(big.Int).SetBytes(proofBytes[96:128])
	}

	// Build RawProof array: [A.X, A.Y, B.X[0], B.X[1], B.Y[0], B.Y[1], C.X, C.Y]
	result.RawProof = []*big.Int{
		result.A[0], result.A[1],
		result.B[0][0], result.B[0][1],
		result.B[1][0], result.B[1][1],
		result.C[0], result.C[1],
	}

	return result, nil
}

// ExportVerifier exports the Solidity verifier contract.
func (p *Prover) ExportVerifier() (string, error) {
	cc, err := p.Circuit()
	if err != nil {
		return "", err
	}

	var buf []byte
	w := &byteWriter{buf: &buf}
	if err := cc.VerifyingKey.ExportSolidity(w); err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}

	return string(buf), nil
}

// byteWriter is a simple io.Writer that appends to a byte slice.
type byteWriter struct {
	buf *[]byte
}

func (w *byteWriter) Write(p []byte) (n int, err error) {
	*w.buf = append(*w.buf, p...)
	return len(p), nil
}

// ============ Parallel Proving ============

// ProofJob represents a proof generation job.
type ProofJob struct {
	ID       int
	Puzzle   *grid.Grid
	Solution *grid.Grid
}

// ProofJobResult is the result of a proof generation job.
type ProofJobResult struct {
	ID     int
	Proof  *ProofResult
	Error  error
	TimeMs int64
}

// ProveParallel generates multiple proofs concurrently. The number of
// concurrent workers is limited by maxWorkers; results are indexed by
// job ID.
func (p *Prover) ProveParallel(jobs []ProofJob, maxWorkers int) []ProofJobResult {
	if maxWorkers <= 0 {
		maxWorkers = 4
	}

	// Run setup once up front so workers share the same keys.
	if err := p.Setup(); err != nil {
		results := make([]ProofJobResult, len(jobs))
		for i, job := range jobs {
			results[i] = ProofJobResult{ID: job.ID, Error: err}
		}
		return results
	}

	numJobs := len(jobs)
	results := make([]ProofJobResult, numJobs)

	jobChan := make(chan ProofJob, numJobs)
	resultChan := make(chan ProofJobResult, numJobs)

	var wg sync.WaitGroup
	for i := 0; i < maxWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobChan {
				start := time.Now()
				proof, err := p.Prove(job.Puzzle, job.Solution)
				resultChan <- ProofJobResult{
					ID:     job.ID,
					Proof:  proof,
					Error:  err,
					TimeMs: time.Since(start).Milliseconds(),
				}
			}
		}()
	}

	for _, job := range jobs {
		jobChan <- job
	}
	close(jobChan)

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	for result := range resultChan {
		results[result.ID] = result
	}

	return results
}
