package subject

import (
	"errors"
	"io"
	"math/rand"
	"testing"

	"github.com/selectdb/observer_demo/pkg/trace"
	"github.com/selectdb/observer_demo/pkg/utils"
	"github.com/selectdb/observer_demo/pkg/utils/mock"
	"github.com/selectdb/observer_demo/pkg/xerror"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetOutput(io.Discard)
}

// sequence returns a generator yielding values in order, then repeating the last one.
func sequence(values ...int) func() int {
	i := 0
	return func() int {
		v := values[i]
		if i < len(values)-1 {
			i++
		}
		return v
	}
}

type stateRecorder struct {
	states []int
}

func (r *stateRecorder) Update(s *Subject) {
	r.states = append(r.states, s.State())
}

type detachSelf struct {
	t     *testing.T
	calls int
}

func (d *detachSelf) Update(s *Subject) {
	d.calls++
	require.NoError(d.t, s.Detach(d))
}

type panicking struct{}

func (panicking) Update(*Subject) {
	panic("observer failed")
}

func newTestSubject(opts ...Option) (*Subject, *trace.Recorder) {
	recorder := trace.NewRecorder()
	opts = append([]Option{WithSink(recorder)}, opts...)
	return New(opts...), recorder
}

func TestNew_Defaults(t *testing.T) {
	s := New(WithSink(trace.NewRecorder()))
	assert.Equal(t, DefaultName, s.Name())
	assert.Equal(t, 0, s.State())
	assert.Equal(t, 0, s.Observers())
	assert.Equal(t, "name: subject, state: 0, observers: 0", s.String())

	for i := 0; i < 100; i++ {
		s.SomeBusinessLogic()
		assert.GreaterOrEqual(t, s.State(), 0)
		assert.Less(t, s.State(), MaxState)
	}
}

func TestNotify_RegistrationOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _ := newTestSubject()

	observers := make([]*mock.MockObserver[*Subject], 0, 4)
	for i := 0; i < 4; i++ {
		o := mock.NewMockObserver[*Subject](ctrl)
		observers = append(observers, o)
		s.Attach(o)
	}

	calls := make([]*gomock.Call, 0, len(observers))
	for _, o := range observers {
		calls = append(calls, o.EXPECT().Update(s).Times(1))
	}
	gomock.InOrder(calls...)

	s.Notify()
}

func TestDetach_RemovesExactlyOne(t *testing.T) {
	s, recorder := newTestSubject(WithStateGenerator(sequence(4)))
	x := &stateRecorder{}
	y := &stateRecorder{}

	s.Attach(x)
	s.Attach(y)
	require.NoError(t, s.Detach(x))
	assert.Equal(t, 1, s.Observers())

	s.SomeBusinessLogic()
	assert.Empty(t, x.states)
	assert.Equal(t, []int{4}, y.states)
	assert.Contains(t, recorder.Kinds(), trace.KindDetach)
}

func TestDetach_Missing(t *testing.T) {
	s, recorder := newTestSubject()
	s.Attach(&stateRecorder{})

	err := s.Detach(&stateRecorder{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrObserverNotFound))
	assert.Equal(t, xerror.Registry, xerror.TypeOf(err))
	assert.Equal(t, 1, s.Observers())
	assert.NotContains(t, recorder.Kinds(), trace.KindDetach)

	x := &stateRecorder{}
	s.Attach(x)
	require.NoError(t, s.Detach(x))
	assert.True(t, errors.Is(s.Detach(x), ErrObserverNotFound))
}

func TestAttach_Duplicate(t *testing.T) {
	s, _ := newTestSubject(WithStateGenerator(sequence(1, 2)))
	x := &stateRecorder{}

	s.Attach(x)
	s.Attach(x)
	assert.Equal(t, 2, s.Observers())

	s.SomeBusinessLogic()
	assert.Equal(t, []int{1, 1}, x.states)

	// one detach drops one registration
	require.NoError(t, s.Detach(x))
	s.SomeBusinessLogic()
	assert.Equal(t, []int{1, 1, 2}, x.states)
}

func TestSomeBusinessLogic_StateBeforeNotify(t *testing.T) {
	s, recorder := newTestSubject(WithName("weather"), WithStateGenerator(sequence(7, 0, 3)))
	x := &stateRecorder{}
	s.Attach(x)
	recorder.Reset()

	s.SomeBusinessLogic()
	s.SomeBusinessLogic()
	s.SomeBusinessLogic()

	assert.Equal(t, []int{7, 0, 3}, x.states)
	assert.Equal(t, 3, s.State())

	events := recorder.Events()
	require.Len(t, events, 9)
	assert.Equal(t, trace.KindBusiness, events[0].Kind)
	assert.Equal(t, trace.KindStateChanged, events[1].Kind)
	assert.Equal(t, 7, events[1].State)
	assert.Equal(t, "my state has just changed to: 7", events[1].Message)
	assert.Equal(t, trace.KindNotify, events[2].Kind)
	assert.Equal(t, "weather", events[2].Subject)
}

func TestSubjects_Isolated(t *testing.T) {
	s1, _ := newTestSubject(WithName("s1"), WithStateGenerator(sequence(1)))
	s2, _ := newTestSubject(WithName("s2"), WithStateGenerator(sequence(8)))
	x := &stateRecorder{}

	s1.Attach(x)
	assert.Equal(t, 1, s1.Observers())
	assert.Equal(t, 0, s2.Observers())

	s2.SomeBusinessLogic()
	assert.Empty(t, x.states)
	assert.Equal(t, 0, s1.State())
	assert.Equal(t, 8, s2.State())

	s1.SomeBusinessLogic()
	assert.Equal(t, []int{1}, x.states)
}

func TestNotify_FailFast(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _ := newTestSubject()

	first := mock.NewMockObserver[*Subject](ctrl)
	last := mock.NewMockObserver[*Subject](ctrl)
	first.EXPECT().Update(s).Times(1)
	last.EXPECT().Update(gomock.Any()).Times(0)

	s.Attach(first)
	s.Attach(panicking{})
	s.Attach(last)

	assert.PanicsWithValue(t, "observer failed", s.Notify)
}

func TestNotify_DetachDuringUpdate(t *testing.T) {
	s, _ := newTestSubject(WithStateGenerator(sequence(5)))
	d := &detachSelf{t: t}
	x := &stateRecorder{}
	s.Attach(d)
	s.Attach(x)

	s.SomeBusinessLogic()
	s.SomeBusinessLogic()

	assert.Equal(t, 1, d.calls)
	assert.Equal(t, []int{5, 5}, x.states)
	assert.Equal(t, 1, s.Observers())
}

func TestWithRand_Deterministic(t *testing.T) {
	s1, _ := newTestSubject(WithRand(rand.New(rand.NewSource(42))))
	s2, _ := newTestSubject(WithRand(rand.New(rand.NewSource(42))))

	for i := 0; i < 10; i++ {
		s1.SomeBusinessLogic()
		s2.SomeBusinessLogic()
		assert.Equal(t, s1.State(), s2.State())
	}
}

func TestSubject_AsInterface(t *testing.T) {
	var subject utils.Subject[*Subject]
	s, _ := newTestSubject()
	subject = s

	x := &stateRecorder{}
	subject.Attach(x)
	subject.Notify()
	assert.Equal(t, []int{0}, x.states)
	assert.NoError(t, subject.Detach(x))
}
