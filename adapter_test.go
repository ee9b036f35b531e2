package container_test

import (
	"github.com/mgnsk/container"
	"github.com/mgnsk/container/queue"
	"github.com/mgnsk/container/stack"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("stack", func() {
	var s *stack.Stack[int]

	BeforeEach(func() {
		s = stack.New[int](stack.WithCapacity(3))
	})

	When("values are pushed", func() {
		Specify("they are popped in LIFO order", func() {
			Expect(s.Push(1)).To(Succeed())
			Expect(s.Push(2)).To(Succeed())

			v, err := s.Pop()
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(2))

			v, err = s.Pop()
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(1))

			Expect(s.Len()).To(BeZero())
		})
	})

	When("the stack is full", func() {
		Specify("push fails without changing the stack", func() {
			for i := range 3 {
				Expect(s.Push(i)).To(Succeed())
			}

			Expect(s.Push(3)).To(MatchError(container.ErrCapacityExceeded))
			Expect(s.Len()).To(Equal(3))

			v, ok := s.Peek()
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal(2))
		})
	})

	When("the stack is empty", func() {
		Specify("pop fails and the stack stays usable", func() {
			_, err := s.Pop()
			Expect(err).To(MatchError(container.ErrUnderflow))

			Expect(s.Push(1)).To(Succeed())

			v, err := s.Pop()
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(1))
		})
	})
})

var _ = Describe("queue", func() {
	var q *queue.Queue[int]

	BeforeEach(func() {
		q = queue.New[int]()
	})

	When("values are enqueued", func() {
		Specify("they are dequeued in FIFO order", func() {
			q.Enqueue(1)
			q.Enqueue(2)

			v, err := q.Dequeue()
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(1))

			v, err = q.Dequeue()
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(2))

			Expect(q.Len()).To(BeZero())
		})
	})

	When("the queue is empty", func() {
		Specify("dequeue fails and the queue stays usable", func() {
			_, err := q.Dequeue()
			Expect(err).To(MatchError(container.ErrEmpty))

			q.Enqueue(1)
			Expect(q.Len()).To(Equal(1))
		})
	})
})

var _ = DescribeTable("interleaved adapter operations",
	func(values []int, lifo, fifo []int) {
		s := stack.New[int](stack.WithCapacity(len(values)))
		q := queue.New[int]()

		for _, v := range values {
			Expect(s.Push(v)).To(Succeed())
			q.Enqueue(v)
		}

		var popped, dequeued []int

		for s.Len() > 0 {
			v, err := s.Pop()
			Expect(err).NotTo(HaveOccurred())
			popped = append(popped, v)
		}

		for q.Len() > 0 {
			v, err := q.Dequeue()
			Expect(err).NotTo(HaveOccurred())
			dequeued = append(dequeued, v)
		}

		Expect(popped).To(Equal(lifo))
		Expect(dequeued).To(Equal(fifo))
	},
	Entry("single value", []int{1}, []int{1}, []int{1}),
	Entry("zero values", []int{0, 0}, []int{0, 0}, []int{0, 0}),
	Entry("several values", []int{1, 2, 3, 4}, []int{4, 3, 2, 1}, []int{1, 2, 3, 4}),
)
