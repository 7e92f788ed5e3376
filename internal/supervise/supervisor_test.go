package supervise

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"librarylink/internal/procscan"
)

type mapResolver struct {
	table map[int32]procscan.ProcessInfo
}

func (r *mapResolver) Resolve(pid int32) (procscan.ProcessInfo, error) {
	info, ok := r.table[pid]
	if !ok {
		return procscan.ProcessInfo{}, procscan.ErrProcessAbsent
	}
	return info, nil
}

type waitStep struct {
	status procscan.WaitStatus
	err    error
}

// scriptWaiter returns the scripted outcomes in order. An exhausted script
// reports a wait failure so a buggy loop cannot spin forever.
type scriptWaiter struct {
	mu    sync.Mutex
	steps []waitStep
}

func (w *scriptWaiter) Wait(pid int32) (procscan.WaitStatus, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.steps) == 0 {
		return procscan.WaitFailed, errors.New("wait script exhausted")
	}
	step := w.steps[0]
	w.steps = w.steps[1:]
	return step.status, step.err
}

type locStep struct {
	pid int32
	err error
}

type scriptLocator struct {
	steps []locStep
	dirs  []string
}

func (l *scriptLocator) FindInDirectory(dir string) (int32, error) {
	l.dirs = append(l.dirs, dir)
	if len(l.steps) == 0 {
		return 0, procscan.ErrNoProcessFound
	}
	step := l.steps[0]
	l.steps = l.steps[1:]
	return step.pid, step.err
}

// recorder captures the reported event sequence as flat strings.
type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) add(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

func (r *recorder) Waiting(pid int32)               { r.add("waiting %d", pid) }
func (r *recorder) Terminated(pid int32)            { r.add("terminated %d", pid) }
func (r *recorder) OpenFailed(pid int32, err error) { r.add("open-failed %d", pid) }
func (r *recorder) WaitFailed(pid int32, err error) { r.add("wait-failed %d", pid) }
func (r *recorder) UnexpectedWait(pid int32, err error) {
	r.add("unexpected %d", pid)
}
func (r *recorder) Searching(dir string) { r.add("searching %s", dir) }
func (r *recorder) Adopted(pid int32, info procscan.ProcessInfo, resolved bool) {
	r.add("adopted %d %s %v", pid, info.Name, resolved)
}
func (r *recorder) NoSuccessor(dir string) { r.add("no-successor %s", dir) }

func TestRun_SuccessorHop(t *testing.T) {
	resolver := &mapResolver{table: map[int32]procscan.ProcessInfo{
		4321: {Name: "foo.exe", Path: `C:\Apps\Foo\foo.exe`},
		4399: {Name: "foo-worker.exe", Path: `C:\Apps\Foo\foo-worker.exe`},
	}}
	waiter := &scriptWaiter{steps: []waitStep{
		{status: procscan.WaitTerminated},
		{status: procscan.WaitTerminated},
	}}
	locator := &scriptLocator{steps: []locStep{{pid: 4399}}}
	events := &recorder{}

	sup := New(resolver, locator, waiter, WithReporter(events))
	require.NoError(t, sup.Run(4321))

	assert.Equal(t, []string{
		"waiting 4321",
		"terminated 4321",
		`searching C:\Apps\Foo`,
		"adopted 4399 foo-worker.exe true",
		"waiting 4399",
		"terminated 4399",
		`searching C:\Apps\Foo`,
		`no-successor C:\Apps\Foo`,
	}, events.snapshot())
}

func TestRun_StopsExactlyOnceWhenNoSuccessor(t *testing.T) {
	resolver := &mapResolver{table: map[int32]procscan.ProcessInfo{
		10: {Name: "app.exe", Path: `C:\Apps\Bar\app.exe`},
	}}
	waiter := &scriptWaiter{steps: []waitStep{{status: procscan.WaitTerminated}}}
	locator := &scriptLocator{}
	events := &recorder{}

	sup := New(resolver, locator, waiter, WithReporter(events))
	require.NoError(t, sup.Run(10))

	got := events.snapshot()
	stops := 0
	for _, e := range got {
		if e == `no-successor C:\Apps\Bar` {
			stops++
		}
	}
	assert.Equal(t, 1, stops, "Stopped is reached exactly once")
	assert.Equal(t, `no-successor C:\Apps\Bar`, got[len(got)-1], "no events after Stopped")
}

func TestRun_UnexpectedWaitStatusKeepsMonitoring(t *testing.T) {
	resolver := &mapResolver{table: map[int32]procscan.ProcessInfo{
		10: {Name: "app.exe", Path: `C:\Apps\Bar\app.exe`},
	}}
	waiter := &scriptWaiter{steps: []waitStep{
		{status: procscan.WaitUnexpected, err: errors.New("wait event 0x80")},
		{status: procscan.WaitUnexpected, err: errors.New("wait event 0x80")},
		{status: procscan.WaitTerminated},
	}}
	locator := &scriptLocator{}
	events := &recorder{}

	sup := New(resolver, locator, waiter, WithReporter(events))
	require.NoError(t, sup.Run(10))

	assert.Equal(t, []string{
		"waiting 10",
		"unexpected 10",
		"waiting 10",
		"unexpected 10",
		"waiting 10",
		"terminated 10",
		`searching C:\Apps\Bar`,
		`no-successor C:\Apps\Bar`,
	}, events.snapshot())
}

func TestRun_OpenAndWaitFailuresTriggerSearch(t *testing.T) {
	resolver := &mapResolver{table: map[int32]procscan.ProcessInfo{
		10: {Name: "app.exe", Path: `C:\Apps\Bar\app.exe`},
		11: {Name: "app.exe", Path: `C:\Apps\Bar\app.exe`},
	}}
	waiter := &scriptWaiter{steps: []waitStep{
		{status: procscan.WaitOpenFailed, err: errors.New("access denied")},
		{status: procscan.WaitFailed, err: errors.New("wait failed: 6")},
	}}
	locator := &scriptLocator{steps: []locStep{{pid: 11}}}
	events := &recorder{}

	sup := New(resolver, locator, waiter, WithReporter(events))
	require.NoError(t, sup.Run(10))

	assert.Equal(t, []string{
		"waiting 10",
		"open-failed 10",
		`searching C:\Apps\Bar`,
		"adopted 11 app.exe true",
		"waiting 11",
		"wait-failed 11",
		`searching C:\Apps\Bar`,
		`no-successor C:\Apps\Bar`,
	}, events.snapshot())
}

func TestRun_TargetDirectoryNeverRecomputed(t *testing.T) {
	// The successor lives in a different directory; the next search must
	// still be scoped to the original one.
	resolver := &mapResolver{table: map[int32]procscan.ProcessInfo{
		10: {Name: "boot.exe", Path: `C:\Apps\Foo\boot.exe`},
		20: {Name: "moved.exe", Path: `D:\Elsewhere\moved.exe`},
	}}
	waiter := &scriptWaiter{steps: []waitStep{
		{status: procscan.WaitTerminated},
		{status: procscan.WaitTerminated},
	}}
	locator := &scriptLocator{steps: []locStep{{pid: 20}}}

	sup := New(resolver, locator, waiter)
	require.NoError(t, sup.Run(10))

	assert.Equal(t, []string{`C:\Apps\Foo`, `C:\Apps\Foo`}, locator.dirs)
}

func TestRun_AdoptsUnresolvableSuccessor(t *testing.T) {
	resolver := &mapResolver{table: map[int32]procscan.ProcessInfo{
		10: {Name: "app.exe", Path: `C:\Apps\Bar\app.exe`},
		// pid 33 is not resolvable: mid-termination successor.
	}}
	waiter := &scriptWaiter{steps: []waitStep{
		{status: procscan.WaitTerminated},
		{status: procscan.WaitOpenFailed, err: errors.New("gone")},
	}}
	locator := &scriptLocator{steps: []locStep{{pid: 33}}}
	events := &recorder{}

	sup := New(resolver, locator, waiter, WithReporter(events))
	require.NoError(t, sup.Run(10))

	assert.Contains(t, events.snapshot(), "adopted 33  false")
}

func TestRun_InitialResolveFailure(t *testing.T) {
	resolver := &mapResolver{table: map[int32]procscan.ProcessInfo{}}
	events := &recorder{}

	sup := New(resolver, &scriptLocator{}, &scriptWaiter{}, WithReporter(events))
	err := sup.Run(99)

	require.Error(t, err)
	assert.ErrorIs(t, err, procscan.ErrProcessAbsent)
	assert.Empty(t, events.snapshot(), "supervision never starts")
}

// blockingWaiter blocks until released, then terminates.
type blockingWaiter struct {
	release chan struct{}
}

func (w *blockingWaiter) Wait(pid int32) (procscan.WaitStatus, error) {
	<-w.release
	return procscan.WaitTerminated, nil
}

func TestRun_StaysMonitoringWhileProcessLives(t *testing.T) {
	resolver := &mapResolver{table: map[int32]procscan.ProcessInfo{
		10: {Name: "app.exe", Path: `C:\Apps\Bar\app.exe`},
	}}
	waiter := &blockingWaiter{release: make(chan struct{})}
	events := &recorder{}

	sup := New(resolver, &scriptLocator{}, waiter, WithReporter(events))
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = sup.Run(10)
	}()

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, []string{"waiting 10"}, events.snapshot(),
		"no transition while the wait blocks")

	close(waiter.release)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("supervision did not stop after release")
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Monitoring", StateMonitoring.String())
	assert.Equal(t, "Searching", StateSearching.String())
	assert.Equal(t, "Stopped", StateStopped.String())
	assert.Equal(t, "Unknown", State(7).String())
}
