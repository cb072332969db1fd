package dedupe_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/fletching/quiver/internal/domain/dedupe"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSeenAndRecord(t *testing.T) {
	Convey("Given a fresh deduper", t, func() {
		d := dedupe.NewInMemoryDeduper()
		ctx := context.Background()

		Convey("When recording a new id", func() {
			seen := d.SeenAndRecord(ctx, "shoot-1")

			Convey("Then it was not seen before", func() {
				So(seen, ShouldBeFalse)
				So(d.Size(), ShouldEqual, 1)
			})

			Convey("And recording it again reports a duplicate", func() {
				So(d.SeenAndRecord(ctx, "shoot-1"), ShouldBeTrue)
				So(d.Size(), ShouldEqual, 1)
			})
		})

		Convey("When recording distinct ids", func() {
			So(d.SeenAndRecord(ctx, "a"), ShouldBeFalse)
			So(d.SeenAndRecord(ctx, "b"), ShouldBeFalse)
			So(d.Size(), ShouldEqual, 2)
		})
	})
}

func TestUnrecord(t *testing.T) {
	Convey("Given a deduper with recorded ids", t, func() {
		d := dedupe.NewInMemoryDeduper()
		ctx := context.Background()
		d.SeenAndRecord(ctx, "a")
		d.SeenAndRecord(ctx, "b")

		Convey("When unrecording one id", func() {
			d.Unrecord(ctx, "a")

			Convey("Then it can be recorded again", func() {
				So(d.Size(), ShouldEqual, 1)
				So(d.SeenAndRecord(ctx, "a"), ShouldBeFalse)
			})

			Convey("And the other id stays recorded", func() {
				So(d.SeenAndRecord(ctx, "b"), ShouldBeTrue)
			})
		})

		Convey("When unrecording an unknown id", func() {
			d.Unrecord(ctx, "nothing")

			Convey("Then nothing changes", func() {
				So(d.Size(), ShouldEqual, 2)
			})
		})
	})
}

func TestEviction(t *testing.T) {
	Convey("Given a deduper bounded to 3 entries", t, func() {
		d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(3))
		ctx := context.Background()
		d.SeenAndRecord(ctx, "first")
		d.SeenAndRecord(ctx, "second")
		d.SeenAndRecord(ctx, "third")

		Convey("When a fourth id arrives", func() {
			So(d.SeenAndRecord(ctx, "fourth"), ShouldBeFalse)

			Convey("Then the size stays bounded", func() {
				So(d.Size(), ShouldEqual, 3)
			})

			Convey("And the oldest entry survives LIFO eviction", func() {
				So(d.SeenAndRecord(ctx, "first"), ShouldBeTrue)
			})

			Convey("And the entry just added survives too", func() {
				So(d.SeenAndRecord(ctx, "fourth"), ShouldBeTrue)
			})
		})
	})
}

func TestConcurrentAccess(t *testing.T) {
	Convey("Given concurrent submitters racing on the same ids", t, func() {
		d := dedupe.NewInMemoryDeduper()
		ctx := context.Background()

		const workers = 8
		const ids = 100

		var wg sync.WaitGroup
		firsts := make([]int, workers)
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				for i := 0; i < ids; i++ {
					if !d.SeenAndRecord(ctx, fmt.Sprintf("id-%d", i)) {
						firsts[w]++
					}
				}
			}(w)
		}
		wg.Wait()

		Convey("Then each id is recorded exactly once", func() {
			total := 0
			for _, n := range firsts {
				total += n
			}
			So(total, ShouldEqual, ids)
			So(d.Size(), ShouldEqual, ids)
		})
	})
}
