package field

// MenProfile returns the men's field variant: 42 m wide, back boundary
// 96 m past the home line. The diagonal length is calibrated so the
// sector rays meet the side boundaries exactly at the diagonal ends.
func MenProfile() *Profile {
	return &Profile{
		Name: "men",
		HomePlate: HomePlateSpec{
			Radius:           1.5,
			CenterToHomeLine: 5.0,
			LineHalfWidth:    0.5,
		},
		BattingSector: BattingSectorSpec{
			OriginOffsetY: -2.0,
			LeftAngleDeg:  -30.0,
			RightAngleDeg: 30.0,
		},
		DiagonalLines: DiagonalLinesSpec{
			LengthFromHomeLine: 29.373,
		},
		BackBoundary: BackBoundarySpec{
			DistanceFromHomeLine: 96.0,
			Width:                42.0,
		},
		FrontArc:          ArcSpec{InnerRadius: 6.0, OuterRadius: 6.3},
		HomeArcs:          ArcSpec{InnerRadius: 2.5, OuterRadius: 2.8},
		FirstBaseOffset:   20.0,
		SecondBaseOffset:  -2.0,
		ThirdBaseOffset:   25.0,
		BaseRadius:        2.5,
		BaseLineLength:    5.0,
		HomePathFirstLine: 30.0,
		HomePathEndOffset: 2.0,
	}
}

// WomenProfile returns the women's field variant: 40 m wide, back
// boundary 84 m, diagonal lines 27.162 m past the home line. The sector
// angles are calibrated against that diagonal length the same way the
// men's diagonal is calibrated against its angles.
func WomenProfile() *Profile {
	return &Profile{
		Name: "women",
		HomePlate: HomePlateSpec{
			Radius:           1.5,
			CenterToHomeLine: 5.0,
			LineHalfWidth:    0.5,
		},
		BattingSector: BattingSectorSpec{
			OriginOffsetY: -2.0,
			LeftAngleDeg:  -30.346,
			RightAngleDeg: 30.346,
		},
		DiagonalLines: DiagonalLinesSpec{
			LengthFromHomeLine: 27.162,
		},
		BackBoundary: BackBoundarySpec{
			DistanceFromHomeLine: 84.0,
			Width:                40.0,
		},
		FrontArc:          ArcSpec{InnerRadius: 6.0, OuterRadius: 6.3},
		HomeArcs:          ArcSpec{InnerRadius: 2.5, OuterRadius: 2.8},
		FirstBaseOffset:   18.0,
		SecondBaseOffset:  -2.0,
		ThirdBaseOffset:   20.0,
		BaseRadius:        2.25,
		BaseLineLength:    4.5,
		HomePathFirstLine: 26.0,
		HomePathEndOffset: 2.0,
	}
}
