// Package assetcorr computes pairwise Pearson correlation matrices and lag-1
// autocorrelations over daily closing-price histories of financial
// instruments, at daily to yearly resampling frequencies, with optional
// adjustment for cumulative inflation.
//
// The pipeline is:
//
//	raw provider quotes -> Series -> (Deflate) -> CommonDates -> Resample
//	                    -> Pairwise / Lag1Autocorr
//
// Heterogeneous, irregularly dated histories are first restricted to their
// common dates (intersection, never union), so every cross-series statistic
// is computed on identical calendar buckets. Mathematical undefined-ness
// (empty intersection, zero variance) is carried as an explicit sentinel in
// the result, never as a silently wrong number.
//
// Everything in this package is a pure function over explicit in-memory
// inputs. Computations for different instrument sets share no state and may
// run concurrently. Data acquisition, caching and rendering live in the
// yahoo, store, uscpi and renderer packages.
package assetcorr
