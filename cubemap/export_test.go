package cubemap

// these functions are only exported when running tests

var Project = project
var Orientation = orientation
var Sample = sample
var SampleNearest = sampleNearest
var SampleBilinear = sampleBilinear
var DirectionToFace = directionToFace
