package utils

import (
	"fmt"

	"github.com/elliotchance/orderedmap/v2"
)

// OrderedMapToString formats the map as [key=value key=value] in insertion order.
func OrderedMapToString(data orderedmap.OrderedMap[string, any]) string {
	dataString := "["
	count := data.Len()
	for _, key := range data.Keys() {
		v, _ := data.Get(key)
		dataString += fmt.Sprintf("%s=%v", key, v)

		count--
		if count > 0 {
			dataString += " "
		}
	}
	dataString += "]"

	return dataString
}
