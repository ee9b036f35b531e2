package stack_test

import (
	"testing"

	"github.com/mgnsk/container"
	"github.com/mgnsk/container/stack"
	. "github.com/onsi/gomega"
)

func TestDefaultCapacity(t *testing.T) {
	g := NewWithT(t)

	g.Expect(stack.New[int]().Cap()).To(Equal(stack.DefaultCapacity))
	g.Expect(stack.New[int](stack.WithCapacity(0)).Cap()).To(Equal(stack.DefaultCapacity))
}

func TestInvalidCapacity(t *testing.T) {
	g := NewWithT(t)

	g.Expect(func() {
		stack.New[int](stack.WithCapacity(-1))
	}).To(Panic())
}

func TestCapacityExceeded(t *testing.T) {
	s := stack.New[int](stack.WithCapacity(2))

	g := NewWithT(t)

	g.Expect(s.Push(1)).To(Succeed())
	g.Expect(s.Push(2)).To(Succeed())
	g.Expect(s.Push(3)).To(MatchError(container.ErrCapacityExceeded))
	g.Expect(s.Len()).To(Equal(2))

	v, err := s.Pop()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(v).To(Equal(2))

	g.Expect(s.Push(3)).To(Succeed())
	g.Expect(s.Len()).To(Equal(2))
}

func TestUnderflow(t *testing.T) {
	s := stack.New[string]()

	g := NewWithT(t)

	_, err := s.Pop()
	g.Expect(err).To(MatchError(container.ErrUnderflow))
	g.Expect(s.Len()).To(BeZero())

	_, ok := s.Peek()
	g.Expect(ok).To(BeFalse())

	g.Expect(s.Push("")).To(Succeed())

	v, ok := s.Peek()
	g.Expect(ok).To(BeTrue())
	g.Expect(v).To(BeEmpty())
	g.Expect(s.Len()).To(Equal(1))
}
