// Package cvrptwms is a deterministic metaheuristic solver for the vehicle
// routing problem with time windows and a per-route, variable count of
// service workers (VRPTWMS): assign a capacitated vehicle fleet to serve
// every customer within its time window, minimizing, in strict priority
// order, the number of vehicles used, the total number of service workers
// assigned across all routes, and total travel distance.
//
// The solver is organized under four packages:
//
//	core/    — Route/RouteNode: the doubly linked, depot-sentinelled node
//	           sequence a vehicle route is built from, plus NodeSpec, the
//	           immutable per-customer input data.
//	matrix/  — Dense, a small square float64 store backing the per-worker
//	           travel+service cost tables and the ACO pheromone trail.
//	builder/ — synthetic instance generators (GenerateRandom, GenerateGrid)
//	           used by tests, examples and benchmarks.
//	vrp/     — the solver itself: feasibility, Solomon-I1 insertion, local
//	           search, pheromone-guided and tabu/VNS metaheuristics, and the
//	           Solve entry point.
//
// Every run is deterministic for a fixed seed: the single RNG stream is
// derived once at Solve time and never touches wall-clock time or any other
// ambient, non-reproducible source of entropy.
package cvrptwms
