package traverse

// Distribute exposes the proportional correction kernel to traverse_test.
var Distribute = distribute
