package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotReturnsCopy(t *testing.T) {
	s := New(Data{Version: "1.2.3", MuteRoleID: "r1"})

	snap := s.Snapshot()
	snap.Version = "mutated"

	assert.Equal(t, "1.2.3", s.Snapshot().Version)
}

func TestUpdate(t *testing.T) {
	s := New(Data{Version: "1.2.3"})

	s.Update(func(d *Data) { d.MuteRoleID = "r9" })

	snap := s.Snapshot()
	assert.Equal(t, "1.2.3", snap.Version)
	assert.Equal(t, "r9", snap.MuteRoleID)
}

func TestConcurrentReaders(t *testing.T) {
	s := New(Data{Version: "1.2.3"})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.Snapshot()
		}()
		go func() {
			defer wg.Done()
			s.Update(func(d *Data) { d.GeneralChannelID = "c1" })
		}()
	}
	wg.Wait()

	assert.Equal(t, "c1", s.Snapshot().GeneralChannelID)
}
