package queue_test

import (
	"testing"

	"github.com/mgnsk/container"
	"github.com/mgnsk/container/queue"
	. "github.com/onsi/gomega"
)

func TestDequeueEmpty(t *testing.T) {
	q := queue.New[int]()

	g := NewWithT(t)

	_, err := q.Dequeue()
	g.Expect(err).To(MatchError(container.ErrEmpty))
	g.Expect(q.Len()).To(BeZero())

	q.Enqueue(0)

	v, err := q.Dequeue()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(v).To(BeZero())
}

func TestPeek(t *testing.T) {
	q := queue.New[string]()

	g := NewWithT(t)

	_, ok := q.Peek()
	g.Expect(ok).To(BeFalse())

	q.Enqueue("one")
	q.Enqueue("two")

	v, ok := q.Peek()
	g.Expect(ok).To(BeTrue())
	g.Expect(v).To(Equal("one"))
	g.Expect(q.Len()).To(Equal(2))
}
