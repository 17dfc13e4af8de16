/*
bio-fqstats computes per-read statistics over a pair of R1/R2 FASTQ files.

The two files are read in lockstep. The run fails if one file has more
records than the other, if a record is truncated, or if the n-th R1 and R2
records do not share a read name (the ID up to the first whitespace).

Each output row holds one read pair; each column is a metric computed for
mate 1 or mate 2, labelled "R<mate>:<metric>". At least one statistic and
one output are required.

Sample usage:

	bio-fqstats stats -seq=abc,xyz,b.d -quality -csv=out.csv r1.fastq.gz r2.fastq.gz

	bio-fqstats downsample -rate=0.1 r1.fastq r2.fastq r1.small.fastq r2.small.fastq

Quality lines hold one decimal digit per base.
*/
package main
