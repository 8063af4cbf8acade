package simd

import (
	"os"
	"runtime"
	"strings"
	"sync/atomic"
)

// Kernels identifies a float32 kernel set.
type Kernels uint8

const (
	// Generic represents the plain Go loops.
	Generic Kernels = iota
	// Unrolled represents the four-lane loops with independent accumulators.
	Unrolled
)

// String returns the string representation of a kernel set.
func (k Kernels) String() string {
	switch k {
	case Generic:
		return "generic"
	case Unrolled:
		return "unrolled"
	default:
		return "unknown"
	}
}

// ParseKernels parses a string into a kernel set.
func ParseKernels(s string) (Kernels, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "unrolled":
		return Unrolled, true
	default:
		return Generic, false
	}
}

// ISA represents the widest vector extension the CPU reports.
type ISA uint8

const (
	// None means no wide vector extension was detected.
	None ISA = iota
	// NEON represents ARM64 NEON (128-bit SIMD, ASIMD).
	NEON
	// SVE2 represents ARM64 SVE2 (scalable vectors).
	SVE2
	// AVX2 represents x86-64 AVX2 (256-bit SIMD with FMA).
	AVX2
	// AVX512 represents x86-64 AVX-512 (512-bit SIMD).
	AVX512
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case None:
		return "none"
	case NEON:
		return "neon"
	case SVE2:
		return "sve2"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// EnvOverride is the environment variable consulted at init.
const EnvOverride = "LAYERGO_SIMD"

var (
	active      atomic.Uint32
	hasOverride bool

	// CPU feature flags, set by the platform-specific init.
	hasASIMD    bool
	hasSVE2     bool
	hasAVX2     bool
	hasAVX512F  bool
	hasAVX512BW bool
)

// initCapabilities runs from the platform-specific init after CPU
// features are detected.
func initCapabilities() {
	if override := os.Getenv(EnvOverride); override != "" {
		if k, ok := ParseKernels(override); ok {
			hasOverride = true
			SetKernels(k)
			return
		}
		// Unknown override: fall through to auto-detection.
	}

	SetKernels(selectKernels())
}

// selectKernels picks the unrolled loops when the CPU has a wide vector
// unit to keep the independent accumulators busy.
func selectKernels() Kernels {
	if DetectedISA() == None {
		return Generic
	}
	return Unrolled
}

// DetectedISA returns the widest vector extension found by CPU feature
// detection.
func DetectedISA() ISA {
	switch runtime.GOARCH {
	case "arm64":
		// Apple's SVE2 is not native; report NEON on darwin.
		if hasSVE2 && runtime.GOOS != "darwin" {
			return SVE2
		}
		if hasASIMD {
			return NEON
		}
	case "amd64":
		if hasAVX512F && hasAVX512BW {
			return AVX512
		}
		if hasAVX2 {
			return AVX2
		}
	}
	return None
}

// SetKernels switches the active kernel set.
func SetKernels(k Kernels) {
	active.Store(uint32(k))
	if k == Unrolled {
		kernels.Store(&unrolledKernels)
		return
	}
	kernels.Store(&genericKernels)
}

// ActiveKernels returns the currently active kernel set.
func ActiveKernels() Kernels {
	return Kernels(active.Load())
}

// IsOverridden returns true if LAYERGO_SIMD selected the kernel set.
func IsOverridden() bool {
	return hasOverride
}

// HasASIMD returns true if ARM64 NEON is available.
func HasASIMD() bool {
	return hasASIMD
}

// HasSVE2 returns true if ARM64 SVE2 is available.
func HasSVE2() bool {
	return hasSVE2
}

// HasAVX2 returns true if x86-64 AVX2+FMA is available.
func HasAVX2() bool {
	return hasAVX2
}

// HasAVX512 returns true if x86-64 AVX-512 (F+BW) is available.
func HasAVX512() bool {
	return hasAVX512F && hasAVX512BW
}
