package metrics

import "testing"

var sink []byte

func TestMemoryCollector_Snapshot(t *testing.T) {
	t.Parallel()

	mc := NewMemoryCollector()
	snap := mc.Snapshot()

	if snap.HeapAlloc == 0 {
		t.Error("HeapAlloc should be > 0")
	}
	if snap.Sys == 0 {
		t.Error("Sys should be > 0")
	}
}

func TestMemoryCollector_Delta(t *testing.T) {
	t.Parallel()

	mc := NewMemoryCollector()
	before := mc.Snapshot()

	sink = make([]byte, 1024*1024)

	after := mc.Snapshot()

	if after.Sys < before.Sys {
		t.Error("Sys should not decrease between snapshots")
	}
	if d := Delta(before, after); d.Allocated < 1024*1024 {
		t.Errorf("Allocated = %d, want at least 1 MiB", d.Allocated)
	}
}

func TestDelta_NeverUnderflows(t *testing.T) {
	t.Parallel()
	d := Delta(MemorySnapshot{TotalAlloc: 10, NumGC: 3}, MemorySnapshot{TotalAlloc: 5, NumGC: 1})
	if d != (MemoryDelta{}) {
		t.Errorf("Delta = %+v, want zero", d)
	}
}
