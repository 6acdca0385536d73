package registry

// MessageID computes the DJB2 hash of a topic name. This is the ABI
// contract between a code generator emitting a topic descriptor and
// this core: two descriptors built independently from the same name
// must hash to the same value, so the algorithm is fixed here rather
// than left to whatever string-hash the standard library happens to
// use internally.
func MessageID(topicName string) uint64 {
	var hash uint64 = 5381
	for i := 0; i < len(topicName); i++ {
		hash = hash*33 + uint64(topicName[i])
	}
	return hash
}
