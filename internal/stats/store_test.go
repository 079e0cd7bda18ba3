package stats

import (
	"testing"
	"time"

	. "github.com/onsi/gomega"
)

func TestRecordAndReload(t *testing.T) {
	g := NewWithT(t)
	dir := t.TempDir()

	st := New(dir)
	g.Expect(st.Init()).To(Succeed())

	g.Expect(st.Record(3 * time.Second)).To(Succeed())
	g.Expect(st.Record(9 * time.Second)).To(Succeed())
	g.Expect(st.Record(5 * time.Second)).To(Succeed())

	got := st.Stats()
	g.Expect(got.TotalRuns).To(Equal(3))
	g.Expect(got.LongestRunSeconds).To(Equal(9.0))
	g.Expect(got.RecentSeconds).To(Equal([]float64{3, 9, 5}))

	// a fresh store over the same directory sees the persisted state
	reloaded := New(dir)
	g.Expect(reloaded.Init()).To(Succeed())
	g.Expect(reloaded.Stats().TotalRuns).To(Equal(3))
	g.Expect(reloaded.Stats().LongestRunSeconds).To(Equal(9.0))
}

func TestRecentDurationsBounded(t *testing.T) {
	g := NewWithT(t)

	st := New(t.TempDir())
	g.Expect(st.Init()).To(Succeed())

	for i := 0; i < recentCap+50; i++ {
		g.Expect(st.Record(time.Second)).To(Succeed())
	}

	got := st.Stats()
	g.Expect(got.TotalRuns).To(Equal(recentCap + 50))
	g.Expect(got.RecentSeconds).To(HaveLen(recentCap))
}

func TestInitEmptyDir(t *testing.T) {
	g := NewWithT(t)

	st := New(t.TempDir())
	g.Expect(st.Init()).To(Succeed())

	got := st.Stats()
	g.Expect(got.TotalRuns).To(BeZero())
	g.Expect(got.LongestRunSeconds).To(BeZero())
	g.Expect(got.RecentSeconds).To(BeEmpty())
}

func TestStatsReturnsCopy(t *testing.T) {
	g := NewWithT(t)

	st := New(t.TempDir())
	g.Expect(st.Init()).To(Succeed())
	g.Expect(st.Record(2 * time.Second)).To(Succeed())

	got := st.Stats()
	got.RecentSeconds[0] = 999

	g.Expect(st.Stats().RecentSeconds[0]).To(Equal(2.0))
}
