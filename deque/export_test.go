package deque

import "fmt"

// CheckLinks is a white-box bridge for deque_test: it walks the node chain and
// reports the first broken front/rear/count invariant, or nil.
func CheckLinks[T comparable](d *Deque[T]) error {
	switch {
	case d.count == 0:
		if d.front != nil || d.rear != nil {
			return fmt.Errorf("empty deque with front=%v rear=%v", d.front != nil, d.rear != nil)
		}
		return nil
	case d.count == 1:
		if d.front == nil || d.front != d.rear {
			return fmt.Errorf("single-element deque must share front and rear")
		}
	default:
		if d.front == nil || d.rear == nil || d.front == d.rear {
			return fmt.Errorf("count %d but ends are not distinct", d.count)
		}
	}
	cur := d.front
	for hops := 0; hops < d.count-1; hops++ {
		if cur.next == nil {
			return fmt.Errorf("chain ends after %d hops, want %d", hops, d.count-1)
		}
		cur = cur.next
	}
	if cur != d.rear {
		return fmt.Errorf("walking %d hops from front does not reach rear", d.count-1)
	}
	if d.rear.next != nil {
		return fmt.Errorf("rear has a successor")
	}
	return nil
}
