package md2docx

import (
	"errors"
	"runtime"
	"testing"
)

func TestNewConverterPool(t *testing.T) {
	t.Parallel()

	pool, err := NewConverterPool(3)
	if err != nil {
		t.Fatalf("NewConverterPool() error = %v", err)
	}
	if got := pool.Size(); got != 3 {
		t.Errorf("Size() = %d, want 3", got)
	}
}

func TestNewConverterPoolClampsToMinimum(t *testing.T) {
	t.Parallel()

	pool, err := NewConverterPool(0)
	if err != nil {
		t.Fatalf("NewConverterPool() error = %v", err)
	}
	if got := pool.Size(); got != MinPoolSize {
		t.Errorf("Size() = %d, want %d", got, MinPoolSize)
	}
}

func TestNewConverterPoolInvalidOption(t *testing.T) {
	t.Parallel()

	_, err := NewConverterPool(2, WithTheme("neon"))
	if !errors.Is(err, ErrInvalidTheme) {
		t.Errorf("NewConverterPool() error = %v, want %v", err, ErrInvalidTheme)
	}
}

func TestPoolAcquireRelease(t *testing.T) {
	t.Parallel()

	pool, err := NewConverterPool(2, WithTheme(ThemeProfessional))
	if err != nil {
		t.Fatalf("NewConverterPool() error = %v", err)
	}

	a := pool.Acquire()
	b := pool.Acquire()
	if a == nil || b == nil {
		t.Fatal("Acquire() returned nil converter")
	}
	if a.Theme() != ThemeProfessional {
		t.Errorf("Theme() = %q, want %q", a.Theme(), ThemeProfessional)
	}

	pool.Release(a)
	if c := pool.Acquire(); c != a {
		t.Error("Acquire() after Release() did not return the released converter")
	}
	pool.Release(b)
}

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	if got := ResolvePoolSize(5); got != 5 {
		t.Errorf("ResolvePoolSize(5) = %d, want 5", got)
	}
	if got := ResolvePoolSize(-1); got < MinPoolSize || got > MaxPoolSize {
		t.Errorf("ResolvePoolSize(-1) = %d, want within [%d, %d]", got, MinPoolSize, MaxPoolSize)
	}

	procs := runtime.GOMAXPROCS(0)
	want := procs
	if want > MaxPoolSize {
		want = MaxPoolSize
	}
	if want < MinPoolSize {
		want = MinPoolSize
	}
	if got := ResolvePoolSize(0); got != want {
		t.Errorf("ResolvePoolSize(0) = %d, want %d", got, want)
	}
}
