package cvss

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestV3(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		tcs := []ErrorTestcase{
			{Vector: "CVSS:3.0/AV:P/AC:H/PR:H/UI:R/S:U/C:N/I:N/A:N"},
			{Vector: "CVSS:3.1/AV:P/AC:H/PR:H/UI:R/S:U/C:N/I:N/A:N"},
			{Vector: "CVSS:3.1/A:N/I:N/C:N/S:U/UI:R/PR:H/AC:H/AV:P"},
			{Vector: "XXX:3.0/AV:P/AC:H/PR:H/UI:R/S:U/C:N/I:N/A:N", Kind: ErrUnsupportedVersion},
			{Vector: "CVSS:2.0/AV:P/AC:H/PR:H/UI:R/S:U/C:N/I:N/A:N", Kind: ErrUnsupportedVersion},
			{Vector: "CVSS:3.3", Kind: ErrUnsupportedVersion},
			{Vector: "CVSS3.1/AV:X/AC:H/PR:H/UI:R/S:U/C:N/I:N/A:N", Kind: ErrUnsupportedVersion},
			{Vector: "AV:N/AC:L/PR:N/UI:N/S:C/C:H/I:H/A:H", Kind: ErrUnsupportedVersion},
			{Vector: "CVSS:3.1", Kind: ErrMissingMetric},
			{Vector: "CVSS:3.1/", Kind: ErrMissingMetric},
			{Vector: "CVSS:3.1/AV:P/AC:H/PR:H/UI:R/S:U/C:N/I:N/A-N", Kind: ErrMalformedToken},
			{Vector: "CVSS:3.1/AV:P/AC:H/PR:H/UI:R/S:U/C:N/I:N/A:N/", Kind: ErrMalformedToken},
			{Vector: "CVSS:3.1/AV:P/AC:H/PR:H//UI:R/S:U/C:N/I:N/A:N", Kind: ErrMalformedToken},
			{Vector: "CVSS:3.1/AV:P/AC:H/PR:H/UI:R/S:U/C:N/I:N/X:N", Kind: ErrUnknownMetric},
			{Vector: "CVSS:3.1/CVSS:3.0/AV:P/AC:H/PR:H/UI:R/S:U/C:N/I:N/A:N", Kind: ErrUnknownMetric},
			{Vector: "CVSS:3.1/av:P/AC:H/PR:H/UI:R/S:U/C:N/I:N/A:N", Kind: ErrUnknownMetric},
			{Vector: "CVSS:3.1/AV:P/AC:H/PR:H/UI:R/S:U/C:N/I:N/A:N/CDP:H", Kind: ErrUnknownMetric},
			{Vector: "CVSS:3.1/AV:P/AC:H/PR:H/UI:R/S:U/C:N/I:N/A:X", Kind: ErrUnknownValue},
			{Vector: "CVSS:3.1/AV:P/AC:H/PR:H/UI:R/S:U/C:N/I:X/A:N", Kind: ErrUnknownValue},
			{Vector: "CVSS:3.1/AV:P/AC:H/PR:H/UI:R/S:U/C:X/I:N/A:N", Kind: ErrUnknownValue},
			{Vector: "CVSS:3.1/AV:P/AC:H/PR:H/UI:R/S:X/C:N/I:N/A:N", Kind: ErrUnknownValue},
			{Vector: "CVSS:3.1/AV:P/AC:H/PR:H/UI:X/S:U/C:N/I:N/A:N", Kind: ErrUnknownValue},
			{Vector: "CVSS:3.1/AV:P/AC:H/PR:X/UI:R/S:U/C:N/I:N/A:N", Kind: ErrUnknownValue},
			{Vector: "CVSS:3.1/AV:P/AC:X/PR:H/UI:R/S:U/C:N/I:N/A:N", Kind: ErrUnknownValue},
			{Vector: "CVSS:3.1/AV:X/AC:H/PR:H/UI:R/S:U/C:N/I:N/A:N", Kind: ErrUnknownValue},
			{Vector: "CVSS:3.0/AV:Z/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H", Kind: ErrUnknownValue},
			{Vector: "CVSS:3.1/AV:/AC:H/PR:H/UI:R/S:U/C:N/I:N/A:N", Kind: ErrUnknownValue},
			{Vector: "CVSS:3.1/AV:P/AC:H/PR:H/UI:R/S:U/C:N/I:N/A:N/E:ND", Kind: ErrUnknownValue},
			{Vector: "CVSS:3.1/AV:P/AC:H/PR:H/UI:R/S:U/C:N/I:N/A:N/AV:X", Kind: ErrUnknownValue},
			{Vector: "CVSS:3.1/AV:P/AC:H/PR:H/UI:R/S:U/C:N/I:N/A:N/AV:P", Kind: ErrDuplicateMetric},
			{Vector: "CVSS:3.1/AV:P/AC:H/PR:H/UI:R/S:U/C:N/I:N/A:N/E:F/E:F", Kind: ErrDuplicateMetric},
			{Vector: "CVSS:3.1/AV:P/AC:H/PR:H/UI:R/S:U/C:N/I:N/A:N/MAV:X/MAV:N", Kind: ErrDuplicateMetric},
			{Vector: "CVSS:3.0/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H", Kind: ErrMissingMetric},
			{Vector: "CVSS:3.1/AC:H/PR:H/UI:R/S:U/C:N/I:N/A:N/MAV:N", Kind: ErrMissingMetric},
		}
		CheckErrors(t, ParseV3, tcs)
	})

	t.Run("Roundtrip", func(t *testing.T) {
		vecs := []string{
			"CVSS:3.1/AV:P/AC:H/PR:H/UI:R/S:U/C:N/I:N/A:N",                                       // Zero metrics
			"CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:N/A:N",                                       // CVE-2015-8252
			"CVSS:3.1/AV:N/AC:L/PR:N/UI:R/S:C/C:L/I:L/A:N",                                       // CVE-2013-1937
			"CVSS:3.1/AV:N/AC:L/PR:L/UI:N/S:C/C:L/I:L/A:N",                                       // CVE-2013-0375
			"CVSS:3.1/AV:N/AC:H/PR:N/UI:R/S:U/C:L/I:N/A:N",                                       // CVE-2014-3566
			"CVSS:3.1/AV:N/AC:L/PR:L/UI:N/S:C/C:H/I:H/A:H",                                       // CVE-2012-1516
			"CVSS:3.1/AV:N/AC:L/PR:L/UI:N/S:U/C:H/I:H/A:H",                                       // CVE-2012-0384
			"CVSS:3.1/AV:L/AC:L/PR:N/UI:R/S:U/C:H/I:H/A:H",                                       // CVE-2015-1098
			"CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:N/A:N",                                       // CVE-2014-0160
			"CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H",                                       // CVE-2014-6271
			"CVSS:3.1/AV:N/AC:H/PR:N/UI:N/S:C/C:N/I:H/A:N",                                       // CVE-2008-1447
			"CVSS:3.1/AV:P/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H",                                       // CVE-2014-2005
			"CVSS:3.0/AV:N/AC:L/PR:N/UI:R/S:U/C:H/I:H/A:N",                                       // CVE-2016-0128
			"CVSS:3.0/AV:A/AC:L/PR:N/UI:N/S:C/C:H/I:N/A:H",                                       // CVE-2013-6014
			"CVSS:3.1/AV:N/AC:L/PR:H/UI:N/S:U/C:L/I:L/A:N/E:F",                                   // Temporal
			"CVSS:3.0/AV:P/AC:H/PR:L/UI:R/S:U/C:L/I:L/A:H/E:H/RL:U/RC:U",                         // Temporal
			"CVSS:3.1/AV:N/AC:L/PR:H/UI:N/S:U/C:L/I:L/A:N/CR:H/IR:H/AR:H",                        // Environmental
			"CVSS:3.1/AV:N/AC:L/PR:L/UI:N/S:U/C:H/I:H/A:H/E:P/RL:O/RC:C/CR:H/IR:M/AR:L/MAV:A/MS:C", // Everything
			"CVSS:3.1/AV:L/AC:H/PR:H/UI:R/S:U/C:L/I:L/A:L/MAV:N/MAC:H/MPR:N/MUI:N/MS:C/MC:N/MI:H/MA:L",
		}
		Roundtrip(t, ParseV3, vecs)
	})

	t.Run("Score", func(t *testing.T) {
		t.Run("3.0", func(t *testing.T) {
			tcs := []ScoreTestcase{
				{Vector: "CVSS:3.0/AV:N/AC:L/PR:N/UI:R/S:C/C:L/I:L/A:N", Base: 6.1}, // CVE-2013-1937
				{Vector: "CVSS:3.0/AV:N/AC:L/PR:L/UI:N/S:C/C:L/I:L/A:N", Base: 6.4}, // CVE-2013-0375
				{Vector: "CVSS:3.0/AV:N/AC:H/PR:N/UI:R/S:U/C:L/I:N/A:N", Base: 3.1}, // CVE-2014-3566
				{Vector: "CVSS:3.0/AV:N/AC:L/PR:L/UI:N/S:C/C:H/I:H/A:H", Base: 9.9}, // CVE-2012-1516
				{Vector: "CVSS:3.0/AV:N/AC:L/PR:H/UI:N/S:U/C:H/I:H/A:H", Base: 7.2}, // CVE-2012-0384
				{Vector: "CVSS:3.0/AV:L/AC:L/PR:N/UI:R/S:U/C:H/I:H/A:H", Base: 7.8}, // CVE-2015-1098
				{Vector: "CVSS:3.0/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:N/A:N", Base: 7.5}, // CVE-2014-0160
				{Vector: "CVSS:3.0/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H", Base: 9.8}, // CVE-2014-6271
				{Vector: "CVSS:3.0/AV:N/AC:H/PR:N/UI:N/S:C/C:N/I:H/A:N", Base: 6.8}, // CVE-2008-1447
				{Vector: "CVSS:3.0/AV:P/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H", Base: 6.8}, // CVE-2014-2005
				{Vector: "CVSS:3.0/AV:N/AC:L/PR:N/UI:N/S:C/C:L/I:N/A:N", Base: 5.8}, // CVE-2010-0467
				{Vector: "CVSS:3.0/AV:N/AC:L/PR:N/UI:N/S:C/C:N/I:L/A:N", Base: 5.8}, // CVE-2012-1342
				{Vector: "CVSS:3.0/AV:A/AC:L/PR:N/UI:N/S:C/C:H/I:N/A:H", Base: 9.3}, // CVE-2013-6014
				{Vector: "CVSS:3.0/AV:N/AC:L/PR:L/UI:R/S:C/C:H/I:H/A:H", Base: 9.0}, // CVE-2019-7551
				{Vector: "CVSS:3.0/AV:L/AC:L/PR:N/UI:R/S:U/C:H/I:H/A:H", Base: 7.8}, // CVE-2009-0658
				{Vector: "CVSS:3.0/AV:A/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H", Base: 8.8}, // CVE-2011-1265
				{Vector: "CVSS:3.0/AV:P/AC:L/PR:N/UI:N/S:U/C:N/I:H/A:N", Base: 4.6}, // CVE-2014-2019
				{Vector: "CVSS:3.0/AV:N/AC:L/PR:N/UI:R/S:U/C:H/I:H/A:H", Base: 8.8}, // CVE-2015-0970
				{Vector: "CVSS:3.0/AV:N/AC:H/PR:N/UI:N/S:U/C:H/I:H/A:N", Base: 7.4}, // CVE-2014-0224
				{Vector: "CVSS:3.0/AV:N/AC:L/PR:N/UI:R/S:C/C:H/I:H/A:H", Base: 9.6}, // CVE-2012-5376
				{Vector: "CVSS:3.0/AV:N/AC:L/PR:N/UI:R/S:U/C:H/I:H/A:H", Base: 8.8}, // CVE-2016-1645
				{Vector: "CVSS:3.0/AV:N/AC:H/PR:N/UI:R/S:U/C:H/I:H/A:N", Base: 6.8}, // CVE-2016-0128
				{Vector: "CVSS:3.0/AV:N/AC:H/PR:N/UI:R/S:U/C:H/I:H/A:H", Base: 7.5}, // CVE-2016-2118
				{Vector: "CVSS:3.0/AV:N/AC:L/PR:N/UI:R/S:C/C:L/I:L/A:N", Base: 6.1}, // CVE-2017-5942
				{Vector: "CVSS:3.0/AV:L/AC:L/PR:N/UI:R/S:U/C:H/I:H/A:H", Base: 7.8}, // CVE-2018-18913
				{Vector: "CVSS:3.0/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:L/A:L", Base: 8.6}, // CVE-2016-5558
				{Vector: "CVSS:3.0/AV:L/AC:L/PR:H/UI:N/S:C/C:H/I:H/A:H", Base: 8.2}, // CVE-2016-5729
				{Vector: "CVSS:3.0/AV:L/AC:L/PR:H/UI:N/S:U/C:N/I:H/A:H", Base: 6.0}, // CVE-2015-2890
				{Vector: "CVSS:3.0/AV:P/AC:L/PR:N/UI:N/S:C/C:H/I:H/A:H", Base: 7.6}, // CVE-2018-3652
				{Vector: "CVSS:3.0/AV:N/AC:H/PR:N/UI:R/S:U/C:H/I:H/A:H", Base: 7.5}, // CVE-2019-0884 (IE)
				{Vector: "CVSS:3.0/AV:N/AC:H/PR:N/UI:R/S:U/C:L/I:L/A:N", Base: 4.2}, // CVE-2019-0884 (Edge)
			}
			CheckScores(t, ParseV3, tcs)
		})
		t.Run("3.1", func(t *testing.T) {
			tcs := []ScoreTestcase{
				{Vector: "CVSS:3.1/AV:P/AC:H/PR:H/UI:R/S:U/C:N/I:N/A:N", Base: 0.0}, // Zero metrics
				{Vector: "CVSS:3.1/AV:N/AC:L/PR:L/UI:R/S:U/C:N/I:N/A:N", Base: 0.0}, // Zero metrics
				{Vector: "CVSS:3.1/AV:N/AC:L/PR:L/UI:N/S:C/C:L/I:L/A:N", Base: 6.4}, // CVE-2013-0375
				{Vector: "CVSS:3.1/AV:N/AC:H/PR:N/UI:R/S:U/C:L/I:N/A:N", Base: 3.1}, // CVE-2014-3566
				{Vector: "CVSS:3.1/AV:N/AC:L/PR:L/UI:N/S:C/C:H/I:H/A:H", Base: 9.9}, // CVE-2012-1516
				{Vector: "CVSS:3.1/AV:N/AC:L/PR:H/UI:N/S:U/C:H/I:H/A:H", Base: 7.2}, // CVE-2012-0384
				{Vector: "CVSS:3.1/AV:L/AC:L/PR:N/UI:R/S:U/C:H/I:H/A:H", Base: 7.8}, // CVE-2015-1098
				{Vector: "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:N/A:N", Base: 7.5}, // CVE-2014-0160
				{Vector: "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H", Base: 9.8}, // CVE-2014-6271
				{Vector: "CVSS:3.1/AV:N/AC:H/PR:N/UI:N/S:C/C:N/I:H/A:N", Base: 6.8}, // CVE-2008-1447
				{Vector: "CVSS:3.1/AV:P/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H", Base: 6.8}, // CVE-2014-2005
				{Vector: "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:C/C:L/I:N/A:N", Base: 5.8}, // CVE-2010-0467
				{Vector: "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:C/C:N/I:L/A:N", Base: 5.8}, // CVE-2012-1342
				{Vector: "CVSS:3.1/AV:A/AC:L/PR:N/UI:N/S:C/C:H/I:N/A:H", Base: 9.3}, // CVE-2013-6014
				{Vector: "CVSS:3.1/AV:N/AC:L/PR:L/UI:R/S:C/C:H/I:H/A:H", Base: 9.0}, // CVE-2019-7551
				{Vector: "CVSS:3.1/AV:L/AC:L/PR:N/UI:R/S:U/C:H/I:H/A:H", Base: 7.8}, // CVE-2009-0658
				{Vector: "CVSS:3.1/AV:A/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H", Base: 8.8}, // CVE-2011-1265
				{Vector: "CVSS:3.1/AV:P/AC:L/PR:N/UI:N/S:U/C:N/I:H/A:N", Base: 4.6}, // CVE-2014-2019
				{Vector: "CVSS:3.1/AV:N/AC:L/PR:N/UI:R/S:U/C:H/I:H/A:H", Base: 8.8}, // CVE-2015-0970
				{Vector: "CVSS:3.1/AV:N/AC:H/PR:N/UI:N/S:U/C:H/I:H/A:N", Base: 7.4}, // CVE-2014-0224
				{Vector: "CVSS:3.1/AV:N/AC:L/PR:N/UI:R/S:C/C:H/I:H/A:H", Base: 9.6}, // CVE-2012-5376
				{Vector: "CVSS:3.1/AV:N/AC:L/PR:N/UI:R/S:U/C:H/I:H/A:H", Base: 8.8}, // CVE-2016-1645
				{Vector: "CVSS:3.1/AV:N/AC:H/PR:N/UI:R/S:U/C:H/I:H/A:N", Base: 6.8}, // CVE-2016-0128
				{Vector: "CVSS:3.1/AV:N/AC:H/PR:N/UI:R/S:U/C:H/I:H/A:H", Base: 7.5}, // CVE-2016-2118
				{Vector: "CVSS:3.1/AV:N/AC:L/PR:N/UI:R/S:C/C:L/I:L/A:N", Base: 6.1}, // CVE-2017-5942
				{Vector: "CVSS:3.1/AV:L/AC:L/PR:N/UI:R/S:U/C:H/I:H/A:H", Base: 7.8}, // CVE-2018-18913
				{Vector: "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:L/A:L", Base: 8.6}, // CVE-2016-5558
				{Vector: "CVSS:3.1/AV:L/AC:L/PR:H/UI:N/S:C/C:H/I:H/A:H", Base: 8.2}, // CVE-2016-5729
				{Vector: "CVSS:3.1/AV:L/AC:L/PR:H/UI:N/S:U/C:N/I:H/A:H", Base: 6.0}, // CVE-2015-2890
				{Vector: "CVSS:3.1/AV:P/AC:L/PR:N/UI:N/S:C/C:H/I:H/A:H", Base: 7.6}, // CVE-2018-3652
				{Vector: "CVSS:3.1/AV:N/AC:H/PR:N/UI:R/S:U/C:H/I:H/A:H", Base: 7.5}, // CVE-2019-0884 (IE)
				{Vector: "CVSS:3.1/AV:N/AC:H/PR:N/UI:R/S:U/C:L/I:L/A:N", Base: 4.2}, // CVE-2019-0884 (Edge)
			}
			CheckScores(t, ParseV3, tcs)
		})
		t.Run("Temporal", func(t *testing.T) {
			tcs := []ScoreTestcase{
				{Vector: "CVSS:3.0/AV:P/AC:H/PR:L/UI:R/S:U/C:L/I:L/A:H/E:H/RL:U/RC:U", Base: 5.0, Temporal: 4.7, Environmental: 4.7},
				{Vector: "CVSS:3.1/AV:P/AC:H/PR:L/UI:R/S:U/C:L/I:L/A:H/E:H/RL:U/RC:U", Base: 5.0, Temporal: 4.6, Environmental: 4.6},
				{Vector: "CVSS:3.1/AV:N/AC:L/PR:H/UI:N/S:U/C:L/I:L/A:N/E:F", Base: 3.8, Temporal: 3.7, Environmental: 3.7},
				{Vector: "CVSS:3.0/AV:N/AC:L/PR:N/UI:N/S:C/C:H/I:H/A:H/E:U/RL:T/RC:R", Base: 10.0, Temporal: 8.4, Environmental: 8.4},
				{Vector: "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:C/C:H/I:H/A:H/E:U/RL:T/RC:R", Base: 10.0, Temporal: 8.4, Environmental: 8.4},
			}
			CheckScores(t, ParseV3, tcs)
		})
		t.Run("Environmental", func(t *testing.T) {
			tcs := []ScoreTestcase{
				{Vector: "CVSS:3.1/AV:N/AC:L/PR:H/UI:N/S:U/C:L/I:L/A:N/CR:H/IR:H/AR:H", Base: 3.8, Temporal: 3.8, Environmental: 4.8},
				{Vector: "CVSS:3.0/AV:N/AC:L/PR:L/UI:N/S:U/C:H/I:H/A:H/E:P/RL:O/RC:C/CR:H/IR:M/AR:L/MAV:A/MS:C", Base: 8.8, Temporal: 7.9, Environmental: 8.1},
				{Vector: "CVSS:3.1/AV:N/AC:L/PR:L/UI:N/S:U/C:H/I:H/A:H/E:P/RL:O/RC:C/CR:H/IR:M/AR:L/MAV:A/MS:C", Base: 8.8, Temporal: 7.9, Environmental: 8.2},
				{Vector: "CVSS:3.0/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H/MAV:L/MAC:H/MPR:H/MUI:R/MC:L/MI:L/MA:N", Base: 9.8, Temporal: 9.8, Environmental: 2.9},
				{Vector: "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H/MAV:L/MAC:H/MPR:H/MUI:R/MC:L/MI:L/MA:N", Base: 9.8, Temporal: 9.8, Environmental: 2.9},
				{Vector: "CVSS:3.1/AV:L/AC:H/PR:H/UI:R/S:U/C:L/I:L/A:L/MAV:N/MAC:H/MPR:N/MUI:N/MS:C/MC:N/MI:H/MA:L", Base: 3.8, Temporal: 3.8, Environmental: 7.5},
				{Vector: "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H/MC:N/MI:N/MA:N", Base: 9.8, Temporal: 9.8, Environmental: 0.0},
				{Vector: "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:N/I:N/A:N/MS:C", Base: 0.0, Temporal: 0.0, Environmental: 0.0},
			}
			CheckScores(t, ParseV3, tcs)
		})
	})
}

// TestV3Scenarios checks the published vectors used throughout the
// documentation.
func TestV3Scenarios(t *testing.T) {
	tcs := []struct {
		Vector string
		Want   Scores
	}{
		{
			Vector: "CVSS:3.0/AV:N/AC:L/PR:N/UI:R/S:U/C:H/I:H/A:N",
			Want:   Scores{Version: Version30, Base: 8.1, Temporal: 8.1, Environmental: 8.1, Severity: High},
		},
		{
			Vector: "CVSS:3.0/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H",
			Want:   Scores{Version: Version30, Base: 9.8, Temporal: 9.8, Environmental: 9.8, Severity: Critical},
		},
		{
			Vector: "CVSS:3.0/AV:P/AC:H/PR:L/UI:R/S:U/C:L/I:L/A:H/E:H/RL:U/RC:U",
			Want:   Scores{Version: Version30, Base: 5.0, Temporal: 4.7, Environmental: 4.7, Severity: Medium},
		},
		{
			Vector: "CVSS:3.1/AV:P/AC:H/PR:L/UI:R/S:U/C:L/I:L/A:H/E:H/RL:U/RC:U",
			Want:   Scores{Version: Version31, Base: 5.0, Temporal: 4.6, Environmental: 4.6, Severity: Medium},
		},
		{
			Vector: "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:C/C:H/I:H/A:H",
			Want:   Scores{Version: Version31, Base: 10.0, Temporal: 10.0, Environmental: 10.0, Severity: Critical},
		},
		{
			Vector: "CVSS:3.1/AV:P/AC:H/PR:H/UI:R/S:U/C:N/I:N/A:N",
			Want:   Scores{Version: Version31, Severity: None},
		},
	}
	ignore := cmpopts.IgnoreFields(Scores{}, "Impact", "Exploitability")
	for _, tc := range tcs {
		t.Run("", func(t *testing.T) {
			t.Log(tc.Vector)
			v, err := ParseV3(tc.Vector)
			if err != nil {
				t.Fatal(err)
			}
			if got, want := Calculate(v), tc.Want; !cmp.Equal(got, want, ignore) {
				t.Error(cmp.Diff(got, want, ignore))
			}
		})
	}
}

func TestV3Subscores(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)
	tcs := []struct {
		Vector         string
		Impact         float64
		Exploitability float64
	}{
		{"CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H", 5.87311872, 3.887042775},
		{"CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:C/C:H/I:H/A:H", 6.0477304915445185, 3.887042775},
		{"CVSS:3.1/AV:N/AC:L/PR:H/UI:N/S:U/C:L/I:L/A:N", 2.514072, 1.234707705},
		{"CVSS:3.1/AV:L/AC:H/PR:H/UI:R/S:U/C:L/I:L/A:L", 3.37337616, 0.332998776},
		{"CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:N/I:N/A:N", 0, 3.887042775},
	}
	for _, tc := range tcs {
		v, err := ParseV3(tc.Vector)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := v.Impact(), tc.Impact; !cmp.Equal(got, want, approx) {
			t.Errorf("%s: impact: got: %v, want: %v", tc.Vector, got, want)
		}
		if got, want := v.Exploitability(), tc.Exploitability; !cmp.Equal(got, want, approx) {
			t.Errorf("%s: exploitability: got: %v, want: %v", tc.Vector, got, want)
		}
	}
}

func TestV3Get(t *testing.T) {
	v, err := ParseV3("CVSS:3.1/MS:C/A:L/I:L/C:L/S:U/UI:R/PR:H/AC:H/AV:L/E:P")
	if err != nil {
		t.Fatal(err)
	}
	got := make(map[string]string)
	for m := range V3Metric(numV3Metrics) {
		got[m.String()] = v.Get(m)
	}
	want := map[string]string{
		"AV": "L", "AC": "H", "PR": "H", "UI": "R", "S": "U", "C": "L", "I": "L", "A": "L",
		"E": "P", "RL": "X", "RC": "X",
		"CR": "X", "IR": "X", "AR": "X",
		"MAV": "X", "MAC": "X", "MPR": "X", "MUI": "X", "MS": "C", "MC": "X", "MI": "X", "MA": "X",
	}
	if !cmp.Equal(got, want) {
		t.Error(cmp.Diff(got, want))
	}
	if got, want := v.String(), "CVSS:3.1/AV:L/AC:H/PR:H/UI:R/S:U/C:L/I:L/A:L/E:P/MS:C"; got != want {
		t.Error(cmp.Diff(got, want))
	}
	if !v.Temporal() || !v.Environmental() {
		t.Errorf("got: %v/%v, want: true/true", v.Temporal(), v.Environmental())
	}
}

func TestV3MetricValue(t *testing.T) {
	// Metric identifiers and their values are distinct types sharing a stem.
	tt := []struct {
		Metric V3Metric
		Value  fmt.Stringer
		Abbrev string
		Want   string
	}{
		{V3AttackVector, V3AttackVectorNetwork, "AV", "N"},
		{V3PrivilegesRequired, V3PrivilegesRequiredLow, "PR", "L"},
		{V3Scope, V3ScopeChanged, "S", "C"},
		{V3ExploitMaturity, V3ExploitMaturityNotDefined, "E", "X"},
		{V3RemediationLevel, V3RemediationLevelNotDefined, "RL", "X"},
		{V3ReportConfidence, V3ReportConfidenceNotDefined, "RC", "X"},
	}
	for _, tc := range tt {
		if got, want := tc.Metric.String(), tc.Abbrev; got != want {
			t.Errorf("metric: got: %q, want: %q", got, want)
		}
		if got, want := tc.Value.String(), tc.Want; got != want {
			t.Errorf("%s value: got: %q, want: %q", tc.Abbrev, got, want)
		}
	}
	if got, want := V3PrivilegesRequiredLow.Weight(V3ScopeChanged), 0.68; got != want {
		t.Errorf("PR:L/S:C weight: got: %v, want: %v", got, want)
	}
	if got, want := V3PrivilegesRequiredLow.Weight(V3ScopeUnchanged), 0.62; got != want {
		t.Errorf("PR:L/S:U weight: got: %v, want: %v", got, want)
	}
}

func TestV3Invalid(t *testing.T) {
	var v V3
	if got, want := v.String(), "CVSS:3.1/INVALID"; got != want {
		t.Errorf("got: %q, want: %q", got, want)
	}
	if _, err := v.MarshalText(); !errors.Is(err, errInvalid) {
		t.Errorf("unexpected error: %v", err)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic")
		}
	}()
	v.BaseScore()
}
