package session

// NotificationCounter tallies notifications shown during the session.
// It only ever goes up.
type NotificationCounter struct {
	total int
}

func (c *NotificationCounter) Increment() int {
	c.total++
	return c.total
}

func (c *NotificationCounter) Current() int {
	return c.total
}
