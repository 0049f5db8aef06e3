package services

import "github.com/bwmarrin/snowflake"

// NewIDNode builds the id generator shared by products and orders. The old
// POS derived ids from the wall clock in milliseconds, which collides under
// rapid successive saves; snowflake ids keep the time ordering without the
// collision risk.
func NewIDNode(node int64) (*snowflake.Node, error) {
	return snowflake.NewNode(node)
}
