package benchmarks

import (
	"encoding/binary"
	"path/filepath"
	"runtime"
	"testing"

	mdbxgo "github.com/erigontech/mdbx-go/mdbx"
	bolt "go.etcd.io/bbolt"

	"github.com/stratumdb/pageio"
	"github.com/stratumdb/pageio/mmap"
)

// Separator-insert workload: fill one inner page to capacity with 8-byte
// keys, the hot loop of tree growth. The bolt and mdbx variants run the
// equivalent branch-page workload through full engines for scale; they
// pay for transactions and leaf writes too, so compare shapes, not
// absolute numbers.
//
// Run with: go test -bench=. -benchtime=1s ./benchmarks/

const benchPageSize = 4096

func newBenchIO() *pageio.InnerIO[uint64] {
	return pageio.NewInnerIO(pageio.TypeBTreeInner, 1, false, pageio.Uint64Codec{})
}

func BenchmarkSeparatorAppend(b *testing.B) {
	io := newBenchIO()
	buf := make([]byte, benchPageSize)
	maxCnt := io.MaxCount(benchPageSize)

	b.SetBytes(int64(maxCnt) * int64(io.ItemSize()+pageio.PageIDSize))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		io.InitNewPage(buf, 1, benchPageSize)
		for j := 0; j < maxCnt; j++ {
			if err := io.Insert(buf, j, uint64(j), nil, pageio.PageID(j)); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkSeparatorInsertFront(b *testing.B) {
	// Worst case: every insert shifts the whole page.
	io := newBenchIO()
	buf := make([]byte, benchPageSize)
	maxCnt := io.MaxCount(benchPageSize)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		io.InitNewPage(buf, 1, benchPageSize)
		for j := 0; j < maxCnt; j++ {
			if err := io.Insert(buf, 0, uint64(j), nil, pageio.PageID(j)); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkSeparatorAppendOffHeap(b *testing.B) {
	arena, err := mmap.NewAnonymous(benchPageSize)
	if err != nil {
		b.Fatal(err)
	}
	defer arena.Close()

	io := newBenchIO()
	buf, err := arena.Page(0, benchPageSize)
	if err != nil {
		b.Fatal(err)
	}
	maxCnt := io.MaxCount(benchPageSize)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		io.InitNewPage(buf, 1, benchPageSize)
		for j := 0; j < maxCnt; j++ {
			if err := io.Insert(buf, j, uint64(j), nil, pageio.PageID(j)); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkSplitToSibling(b *testing.B) {
	io := newBenchIO()
	src := make([]byte, benchPageSize)
	dst := make([]byte, benchPageSize)
	maxCnt := io.MaxCount(benchPageSize)

	io.InitNewPage(src, 1, benchPageSize)
	for j := 0; j < maxCnt; j++ {
		if err := io.Insert(src, j, uint64(j), nil, pageio.PageID(j)); err != nil {
			b.Fatal(err)
		}
	}
	mid := maxCnt / 2

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		io.InitNewPage(dst, 2, benchPageSize)
		io.CopyItems(src, dst, mid, 0, maxCnt-mid, true)
		io.SetCount(dst, maxCnt-mid)
	}
}

func BenchmarkSeparatorInsertBolt(b *testing.B) {
	io := newBenchIO()
	numKeys := io.MaxCount(benchPageSize)

	path := filepath.Join(b.TempDir(), "bench_bolt.db")
	db, err := bolt.Open(path, 0644, &bolt.Options{
		NoSync:         true,
		NoFreelistSync: true,
	})
	if err != nil {
		b.Fatal(err)
	}
	defer db.Close()

	key := make([]byte, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		err := db.Update(func(tx *bolt.Tx) error {
			if tx.Bucket([]byte("bench")) != nil {
				if err := tx.DeleteBucket([]byte("bench")); err != nil {
					return err
				}
			}
			bucket, err := tx.CreateBucket([]byte("bench"))
			if err != nil {
				return err
			}
			for j := 0; j < numKeys; j++ {
				binary.BigEndian.PutUint64(key, uint64(j))
				if err := bucket.Put(key, nil); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSeparatorInsertMdbx(b *testing.B) {
	io := newBenchIO()
	numKeys := io.MaxCount(benchPageSize)

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	env, err := mdbxgo.NewEnv(mdbxgo.Label("bench-separator"))
	if err != nil {
		b.Fatal(err)
	}
	defer env.Close()
	env.SetOption(mdbxgo.OptMaxDB, 10)
	env.SetGeometry(-1, -1, 1<<30, -1, -1, benchPageSize)
	path := filepath.Join(b.TempDir(), "bench_mdbx.db")
	if err := env.Open(path, mdbxgo.NoSubdir|mdbxgo.NoMetaSync|mdbxgo.WriteMap, 0644); err != nil {
		b.Fatal(err)
	}

	key := make([]byte, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		txn, err := env.BeginTxn(nil, 0)
		if err != nil {
			b.Fatal(err)
		}
		dbi, err := txn.OpenDBI("bench", mdbxgo.Create, nil, nil)
		if err != nil {
			txn.Abort()
			b.Fatal(err)
		}
		for j := 0; j < numKeys; j++ {
			binary.BigEndian.PutUint64(key, uint64(i*numKeys+j))
			if err := txn.Put(dbi, key, nil, mdbxgo.Upsert); err != nil {
				txn.Abort()
				b.Fatal(err)
			}
		}
		if _, err := txn.Commit(); err != nil {
			b.Fatal(err)
		}
	}
}
